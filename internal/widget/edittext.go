package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/combine"
	"github.com/balkashynov/tinct/internal/stream"
)

// EditText is an input field. Its border and cursor are tinted with the
// background override or the accent color, read against the dark flag; text
// and hint colors follow textColorPrimary and textColorSecondary.
type EditText struct {
	theming *Behavior

	Value string
	Hint  string
	Width int

	tint      combine.ColorIsDarkState
	cursor    colors.Color
	textColor colors.Color
	hintColor colors.Color
	resolved  uint8
}

const (
	resolvedTint = 1 << iota
	resolvedText
	resolvedHint
)

// NewEditText builds a detached input field.
func NewEditText(hint string, overrides attr.Set, deps Deps) *EditText {
	v := &EditText{Hint: hint, Width: 32, theming: NewBehavior("EditText", deps)}
	store := v.theming.Store()

	background := overrides.Get(attr.Background)
	Bind(v.theming, attr.Background, func() stream.Stream[combine.ColorIsDarkState] {
		return combine.ColorIsDark(v.theming.ResolveColor(background, store.ColorAccent()), store.IsDark())
	}, v.setTint)

	textColor := overrides.Get(attr.TextColor)
	Bind(v.theming, attr.TextColor, func() stream.Stream[colors.Color] {
		return v.theming.ResolveColor(textColor, store.TextColorPrimary())
	}, v.SetTextColor)

	hintColor := overrides.Get(attr.TextColorHint)
	Bind(v.theming, attr.TextColorHint, func() stream.Stream[colors.Color] {
		return v.theming.ResolveColor(hintColor, store.TextColorSecondary())
	}, v.SetHintColor)
	return v
}

func (v *EditText) Attach() { v.theming.Attach() }
func (v *EditText) Detach() { v.theming.Detach() }

// Theming exposes the behavior for inspection.
func (v *EditText) Theming() *Behavior { return v.theming }

func (v *EditText) setTint(s combine.ColorIsDarkState) {
	v.tint = s
	v.cursor = s.Color
	v.resolved |= resolvedTint
}

// Tint returns the last applied tint state.
func (v *EditText) Tint() (combine.ColorIsDarkState, bool) {
	return v.tint, v.resolved&resolvedTint != 0
}

// SetTextColor sets the input text color.
func (v *EditText) SetTextColor(c colors.Color) {
	v.textColor = c
	v.resolved |= resolvedText
}

// TextColor returns the last applied text color.
func (v *EditText) TextColor() (colors.Color, bool) {
	return v.textColor, v.resolved&resolvedText != 0
}

// SetHintColor sets the placeholder color.
func (v *EditText) SetHintColor(c colors.Color) {
	v.hintColor = c
	v.resolved |= resolvedHint
}

// HintColor returns the last applied hint color.
func (v *EditText) HintColor() (colors.Color, bool) {
	return v.hintColor, v.resolved&resolvedHint != 0
}

// View renders the field with a tinted border and cursor.
func (v *EditText) View() string {
	content, cursor := lipgloss.NewStyle(), lipgloss.NewStyle().Reverse(true)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(v.Width)

	if v.resolved&resolvedTint != 0 {
		// fill is a faint wash of the tint over the mode's base
		base := colors.White
		if v.tint.IsDark {
			base = colors.Black
		}
		box = box.BorderForeground(v.tint.Color.Lipgloss()).
			Background(v.tint.Color.WithAlpha(0x22).Over(base).Lipgloss())
		cursor = lipgloss.NewStyle().Background(v.cursor.Lipgloss())
	}

	text := v.Value
	if text == "" {
		text = v.Hint
		if v.resolved&resolvedHint != 0 {
			content = content.Foreground(v.hintColor.Lipgloss())
		}
	} else if v.resolved&resolvedText != 0 {
		content = content.Foreground(v.textColor.Lipgloss())
	}
	return box.Render(content.Render(text) + cursor.Render(" "))
}
