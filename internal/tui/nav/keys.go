package nav

import "github.com/charmbracelet/bubbles/key"

type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.Help, k.Quit}
}

func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Filter, k.Help, k.Quit},
	}
}

type DetailKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Previous key.Binding
	Next     key.Binding
	Browse   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k DetailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Browse, k.Back}
}

func (k DetailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Previous, k.Next, k.Browse, k.Copy},
		{k.Help, k.Back, k.Quit},
	}
}

var ListKeys = ListKeyMap{
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var DetailKeys = DetailKeyMap{
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Browse:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy URL")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
