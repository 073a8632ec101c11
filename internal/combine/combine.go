// Package combine merges resolved theme streams into the composite values a
// widget applies in one step.
package combine

import (
	"fmt"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/stream"
	"github.com/balkashynov/tinct/internal/theme"
)

// UnfocusedAlpha is applied to colors of unselected tab icons and titles.
const UnfocusedAlpha = 0.5

// ColorIsDarkState pairs a color with the dark flag it must be read against.
type ColorIsDarkState struct {
	Color  colors.Color
	IsDark bool
}

// ColorIsDark combines a color stream with the dark flag. A consumer never
// sees a new color paired with a stale flag or the other way round.
func ColorIsDark(color stream.Stream[colors.Color], isDark stream.Stream[bool]) stream.Stream[ColorIsDarkState] {
	return stream.CombineLatest2(color, isDark, func(c colors.Color, dark bool) ColorIsDarkState {
		return ColorIsDarkState{Color: c, IsDark: dark}
	})
}

// ActiveInactiveColors are the selected and unselected content colors drawn
// on top of a background.
type ActiveInactiveColors struct {
	Active   colors.Color
	Inactive colors.Color
}

// ActiveInactiveFor derives readable content colors for background bg.
func ActiveInactiveFor(bg colors.Color) ActiveInactiveColors {
	active := colors.White
	if colors.IsLight(bg) {
		active = colors.Black
	}
	return ActiveInactiveColors{
		Active:   active,
		Inactive: colors.AdjustAlpha(active, UnfocusedAlpha),
	}
}

// ActiveInactive maps every background color of base to its content pair.
func ActiveInactive(base stream.Stream[colors.Color]) stream.Stream[ActiveInactiveColors] {
	return stream.Map(base, ActiveInactiveFor)
}

// ColorForMode follows the store color selected by each emitted mode,
// switching streams whenever the mode changes. A mode without a mapping fails
// the stream with theme.ErrUnknownMode.
func ColorForMode(store *theme.Store, mode stream.Stream[theme.TabLayoutMode]) stream.Stream[colors.Color] {
	return stream.SwitchMap(mode, func(m theme.TabLayoutMode) stream.Stream[colors.Color] {
		switch m {
		case theme.TabLayoutModePrimary:
			return store.ColorPrimary()
		case theme.TabLayoutModeAccent:
			return store.ColorAccent()
		default:
			return stream.Fail[colors.Color](fmt.Errorf("%w: %s", theme.ErrUnknownMode, m))
		}
	})
}

// Palette is a fixed list of colors resolved together, e.g. for a multi-stop
// indicator.
type Palette []colors.Color

// PaletteOf combines n color streams into one Palette. want is the number of
// stops the caller expects; a mismatch fails with *stream.CombinationError.
func PaletteOf(want int, streams ...stream.Stream[colors.Color]) stream.Stream[Palette] {
	return stream.CombineLatest(streams, func(cs []colors.Color) (Palette, error) {
		if len(cs) != want {
			return nil, fmt.Errorf("palette wants %d stops, got %d", want, len(cs))
		}
		return Palette(cs), nil
	})
}
