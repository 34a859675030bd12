package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	generate  key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	generate:  key.NewBinding(key.WithKeys("ctrl+s")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
