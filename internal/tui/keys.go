package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	resync    key.Binding
	copyError key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	resync:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "full resync")),
	copyError: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy error")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
