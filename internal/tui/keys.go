package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	quit        key.Binding
	addAccount  key.Binding
	addCategory key.Binding
	edit        key.Binding
	delete      key.Binding
	copyPass    key.Binding
	copyLogin   key.Binding
	reveal      key.Binding
	searchCat   key.Binding
	searchAcct  key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	addAccount:  key.NewBinding(key.WithKeys("a")),
	addCategory: key.NewBinding(key.WithKeys("A")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	copyPass:    key.NewBinding(key.WithKeys("c")),
	copyLogin:   key.NewBinding(key.WithKeys("u")),
	reveal:      key.NewBinding(key.WithKeys("r")),
	searchCat:   key.NewBinding(key.WithKeys("/")),
	searchAcct:  key.NewBinding(key.WithKeys("f")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
