package widget

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/combine"
	"github.com/balkashynov/tinct/internal/stream"
	"github.com/balkashynov/tinct/internal/theme"
)

// SwatchPalette is the pipeline name used by Swatch.
const SwatchPalette = "palette"

// Swatch shows a row of theme colors, resolved together so the row never
// mixes stops from two different themes.
type Swatch struct {
	theming *Behavior

	props   []theme.ColorProperty
	palette combine.Palette
}

// NewSwatch builds a detached swatch for props.
func NewSwatch(props []theme.ColorProperty, deps Deps) *Swatch {
	v := &Swatch{props: props, theming: NewBehavior("Swatch", deps)}
	store := v.theming.Store()
	BindFunc(v.theming, SwatchPalette, func() stream.Stream[combine.Palette] {
		streams := make([]stream.Stream[colors.Color], len(props))
		for i, p := range props {
			streams[i] = store.Color(p)
		}
		return combine.PaletteOf(len(props), streams...)
	}, func(a, b combine.Palette) bool { return slices.Equal(a, b) }, v.setPalette)
	return v
}

func (v *Swatch) Attach() { v.theming.Attach() }
func (v *Swatch) Detach() { v.theming.Detach() }

// Theming exposes the behavior for inspection.
func (v *Swatch) Theming() *Behavior { return v.theming }

func (v *Swatch) setPalette(p combine.Palette) { v.palette = p }

// Palette returns the last applied colors.
func (v *Swatch) Palette() combine.Palette { return v.palette }

// View renders one block per color with its hex code.
func (v *Swatch) View() string {
	if len(v.palette) == 0 {
		return strings.Repeat("░░ ", len(v.props))
	}
	cells := make([]string, len(v.palette))
	for i, c := range v.palette {
		block := lipgloss.NewStyle().Foreground(c.Lipgloss()).Render("██")
		cells[i] = block + " " + c.Hex()
	}
	return strings.Join(cells, "  ")
}
