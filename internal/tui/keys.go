package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Random  key.Binding
	Tech    key.Binding
	Sports  key.Binding
	Funny   key.Binding
	Mystery key.Binding
	History key.Binding
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Random:  key.NewBinding(key.WithKeys("1", "r"), key.WithHelp("1/r", "random")),
		Tech:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tech")),
		Sports:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sports")),
		Funny:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "funny")),
		Mystery: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "mystery")),
		History: key.NewBinding(key.WithKeys("6", "tab"), key.WithHelp("6/tab", "history")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "scroll down")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("7", "q", "ctrl+c"), key.WithHelp("7/q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Random, k.History, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Random, k.Tech, k.Sports, k.Funny, k.Mystery},
		{k.History, k.Up, k.Down, k.Filter},
		{k.Help, k.Quit},
	}
}
