package gfxeditor

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings for every mode. Only directional, confirm and
// quit keys are used, plus S to save.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Save      key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Yes       key.Binding
	No        key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Left:      key.NewBinding(key.WithKeys("left", "h")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	Save:      key.NewBinding(key.WithKeys("s", "S")),
	Confirm:   key.NewBinding(key.WithKeys("enter")),
	Quit:      key.NewBinding(key.WithKeys("q", "Q", "esc")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	Yes:       key.NewBinding(key.WithKeys("y", "Y")),
	No:        key.NewBinding(key.WithKeys("n", "N")),
	Back:      key.NewBinding(key.WithKeys("esc")),
}
