package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dark   key.Binding
	Accent key.Binding
	Modes  key.Binding
	Attach key.Binding
	Left   key.Binding
	Right  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark/light")),
		Accent: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "next accent")),
		Modes:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "swap tab modes")),
		Attach: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "detach/attach")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "tab")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dark, k.Accent, k.Modes, k.Attach, k.Left, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
