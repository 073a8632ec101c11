package theme

import (
	"fmt"

	"github.com/balkashynov/tinct/internal/colors"
)

// Editor collects changes for one Apply. Values are published in a fixed
// order: colors first, then the dark flag, then modes.
type Editor struct {
	store     *Store
	colors    []colorEdit
	isDark    *bool
	tabBg     *TabLayoutMode
	tabIndic  *TabLayoutMode
	err       error
	published bool
}

type colorEdit struct {
	prop  ColorProperty
	value colors.Color
}

// Color stages a value for p.
func (e *Editor) Color(p ColorProperty, c colors.Color) *Editor {
	if _, ok := e.store.colors[p]; !ok {
		if e.err == nil {
			e.err = fmt.Errorf("%w: %s", ErrUnknownProperty, p)
		}
		return e
	}
	e.colors = append(e.colors, colorEdit{prop: p, value: c})
	return e
}

func (e *Editor) ColorPrimary(c colors.Color) *Editor       { return e.Color(ColorPrimary, c) }
func (e *Editor) ColorPrimaryDark(c colors.Color) *Editor   { return e.Color(ColorPrimaryDark, c) }
func (e *Editor) ColorAccent(c colors.Color) *Editor        { return e.Color(ColorAccent, c) }
func (e *Editor) WindowBackground(c colors.Color) *Editor   { return e.Color(ColorWindowBackground, c) }
func (e *Editor) TextColorPrimary(c colors.Color) *Editor   { return e.Color(TextColorPrimary, c) }
func (e *Editor) TextColorSecondary(c colors.Color) *Editor { return e.Color(TextColorSecondary, c) }

// IsDark stages the dark flag.
func (e *Editor) IsDark(dark bool) *Editor {
	e.isDark = &dark
	return e
}

// TabLayoutBackgroundMode stages the tab background mode.
func (e *Editor) TabLayoutBackgroundMode(m TabLayoutMode) *Editor {
	e.tabBg = &m
	return e
}

// TabLayoutIndicatorMode stages the tab indicator mode.
func (e *Editor) TabLayoutIndicatorMode(m TabLayoutMode) *Editor {
	e.tabIndic = &m
	return e
}

// Apply publishes the staged values. Nothing is published if any staged
// property was unknown. An editor can be applied once.
func (e *Editor) Apply() error {
	if e.err != nil {
		return e.err
	}
	if e.published {
		return nil
	}
	e.published = true
	for _, c := range e.colors {
		e.store.colors[c.prop].Set(c.value)
	}
	if e.isDark != nil {
		e.store.isDark.Set(*e.isDark)
	}
	if e.tabBg != nil {
		e.store.tabBgMode.Set(*e.tabBg)
	}
	if e.tabIndic != nil {
		e.store.tabIndicatorMod.Set(*e.tabIndic)
	}
	return nil
}
