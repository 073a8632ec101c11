package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/stream"
)

// TextView is a label whose color follows textColorSecondary unless the
// host set an explicit textColor.
type TextView struct {
	theming *Behavior

	Text      string
	textColor colors.Color
	hasColor  bool
}

// NewTextView builds a detached text view.
func NewTextView(text string, overrides attr.Set, deps Deps) *TextView {
	v := &TextView{Text: text, theming: NewBehavior("TextView", deps)}
	textColor := overrides.Get(attr.TextColor)
	Bind(v.theming, attr.TextColor, func() stream.Stream[colors.Color] {
		return v.theming.ResolveColor(textColor, v.theming.Store().TextColorSecondary())
	}, v.SetTextColor)
	return v
}

func (v *TextView) Attach() { v.theming.Attach() }
func (v *TextView) Detach() { v.theming.Detach() }

// Theming exposes the behavior for inspection.
func (v *TextView) Theming() *Behavior { return v.theming }

// SetTextColor sets the foreground color.
func (v *TextView) SetTextColor(c colors.Color) {
	v.textColor, v.hasColor = c, true
}

// TextColor returns the last applied color, false if none was applied yet.
func (v *TextView) TextColor() (colors.Color, bool) { return v.textColor, v.hasColor }

// View renders the label. Before any color resolved it uses the terminal
// default.
func (v *TextView) View() string {
	style := lipgloss.NewStyle()
	if v.hasColor {
		style = style.Foreground(v.textColor.Lipgloss())
	}
	return style.Render(v.Text)
}
