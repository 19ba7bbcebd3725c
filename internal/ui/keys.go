package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PlayPause key.Binding
	Stop      key.Binding
	Previous  key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Loop      key.Binding
	BinUp     key.Binding
	BinDown   key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Pager     key.Binding
	Copy      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayPause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "play/pause")),
		Stop:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Previous:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		Last:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		Loop:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle loop")),
		BinUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger bin")),
		BinDown:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller bin")),
		Faster:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "faster")),
		Slower:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "slower")),
		Pager:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "list in pager")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy caption")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload data")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Stop, k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Stop, k.Previous, k.Next, k.First, k.Last},
		{k.Loop, k.BinUp, k.BinDown, k.Faster, k.Slower},
		{k.Pager, k.Copy, k.Reload, k.Help, k.Quit},
	}
}
