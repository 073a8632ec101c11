package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/theme"
	"github.com/balkashynov/tinct/internal/widget"
)

// Showcase is the set of themed widgets rendered by the demo and preview.
type Showcase struct {
	Heading *widget.TextView
	Label   *widget.TextView
	Input   *widget.EditText
	Tabs    *widget.TabLayout
	Swatch  *widget.Swatch
}

// NewShowcase builds every widget detached. overrides applies to the label
// and the input; the heading always tracks the theme.
func NewShowcase(deps widget.Deps, overrides attr.Set) *Showcase {
	return &Showcase{
		Heading: widget.NewTextView("Theme follows the store", nil, deps),
		Label:   widget.NewTextView("Label with host attributes", overrides, deps),
		Input:   widget.NewEditText("type here", overrides, deps),
		Tabs:    widget.NewTabLayout([]string{"Inbox", "Starred", "Archive"}, deps),
		Swatch: widget.NewSwatch([]theme.ColorProperty{
			theme.ColorPrimary,
			theme.ColorPrimaryDark,
			theme.ColorAccent,
			theme.ColorWindowBackground,
		}, deps),
	}
}

type behaviorHolder interface {
	widget.Widget
	Theming() *widget.Behavior
}

func (s *Showcase) widgets() []behaviorHolder {
	return []behaviorHolder{s.Heading, s.Label, s.Input, s.Tabs, s.Swatch}
}

// Attach attaches every widget.
func (s *Showcase) Attach() {
	for _, w := range s.widgets() {
		w.Attach()
	}
}

// Detach detaches every widget.
func (s *Showcase) Detach() {
	for _, w := range s.widgets() {
		w.Detach()
	}
}

// Attached reports whether the widgets are attached.
func (s *Showcase) Attached() bool { return s.Heading.Theming().Attached() }

// Active returns the live subscriptions across every widget.
func (s *Showcase) Active() int {
	n := 0
	for _, w := range s.widgets() {
		n += w.Theming().Active()
	}
	return n
}

// Pipelines returns the declared pipelines across every widget.
func (s *Showcase) Pipelines() int {
	n := 0
	for _, w := range s.widgets() {
		n += w.Theming().Pipelines()
	}
	return n
}

// View renders the widgets stacked with labels.
func (s *Showcase) View() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLabel)).Width(10)
	row := func(name, body string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), body)
	}
	return strings.Join([]string{
		row("text", s.Heading.View()),
		row("label", s.Label.View()),
		row("input", s.Input.View()),
		row("tabs", s.Tabs.View()),
		row("palette", s.Swatch.View()),
	}, "\n\n")
}

// Status summarizes the lifecycle state for the footer.
func (s *Showcase) Status() string {
	if !s.Attached() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStatusOff)).Render("● detached") +
			fmt.Sprintf("  subscriptions %d", s.Active())
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStatusOn)).Render("● attached") +
		fmt.Sprintf("  subscriptions %d/%d", s.Active(), s.Pipelines())
}
