package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/combine"
	"github.com/balkashynov/tinct/internal/stream"
)

// Pipeline names used by TabLayout.
const (
	TabBackground = "tabBackground"
	TabIconTitle  = "tabIconTitle"
	TabIndicator  = "tabIndicator"
)

// TabLayout is a row of tabs. Its background and indicator follow primary or
// accent as selected by the store's tab layout modes, switching live when a
// mode changes. Icon and title colors are derived from the background.
type TabLayout struct {
	theming *Behavior

	Tabs     []string
	Selected int

	background colors.Color
	indicator  colors.Color
	content    combine.ActiveInactiveColors
	hasBg      bool
	hasInd     bool
	hasContent bool
}

// NewTabLayout builds a detached tab layout.
func NewTabLayout(tabs []string, deps Deps) *TabLayout {
	v := &TabLayout{Tabs: tabs, theming: NewBehavior("TabLayout", deps)}
	store := v.theming.Store()

	background := func() stream.Stream[colors.Color] {
		return combine.ColorForMode(store, store.TabLayoutBackgroundMode())
	}
	Bind(v.theming, TabBackground, background, v.SetBackgroundColor)
	Bind(v.theming, TabIconTitle, func() stream.Stream[combine.ActiveInactiveColors] {
		return combine.ActiveInactive(background())
	}, v.setContentColors)
	Bind(v.theming, TabIndicator, func() stream.Stream[colors.Color] {
		return combine.ColorForMode(store, store.TabLayoutIndicatorMode())
	}, v.SetSelectedTabIndicatorColor)
	return v
}

func (v *TabLayout) Attach() { v.theming.Attach() }
func (v *TabLayout) Detach() { v.theming.Detach() }

// Theming exposes the behavior for inspection.
func (v *TabLayout) Theming() *Behavior { return v.theming }

// SetBackgroundColor sets the strip background.
func (v *TabLayout) SetBackgroundColor(c colors.Color) {
	v.background, v.hasBg = c, true
}

// BackgroundColor returns the last applied background.
func (v *TabLayout) BackgroundColor() (colors.Color, bool) { return v.background, v.hasBg }

// SetSelectedTabIndicatorColor sets the underline of the selected tab.
func (v *TabLayout) SetSelectedTabIndicatorColor(c colors.Color) {
	v.indicator, v.hasInd = c, true
}

// IndicatorColor returns the last applied indicator color.
func (v *TabLayout) IndicatorColor() (colors.Color, bool) { return v.indicator, v.hasInd }

func (v *TabLayout) setContentColors(c combine.ActiveInactiveColors) {
	v.content, v.hasContent = c, true
}

// ContentColors returns the last applied icon/title colors.
func (v *TabLayout) ContentColors() (combine.ActiveInactiveColors, bool) {
	return v.content, v.hasContent
}

// View renders the tab strip with the selected tab underlined.
func (v *TabLayout) View() string {
	strip := lipgloss.NewStyle()
	if v.hasBg {
		strip = strip.Background(v.background.Lipgloss())
	}

	titles := make([]string, len(v.Tabs))
	marks := make([]string, len(v.Tabs))
	for i, tab := range v.Tabs {
		title := strip.Padding(0, 2)
		if v.hasContent {
			c := v.content.Inactive
			if i == v.Selected {
				c = v.content.Active
			}
			title = title.Foreground(c.Over(v.background).Lipgloss())
		}
		if i == v.Selected {
			title = title.Bold(true)
		}
		titles[i] = title.Render(tab)

		w := lipgloss.Width(titles[i])
		mark := strings.Repeat(" ", w)
		if i == v.Selected {
			mark = strings.Repeat("━", w)
		}
		markStyle := lipgloss.NewStyle()
		if v.hasInd {
			markStyle = markStyle.Foreground(v.indicator.Lipgloss())
		}
		marks[i] = markStyle.Render(mark)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, titles...),
		lipgloss.JoinHorizontal(lipgloss.Top, marks...),
	)
}
