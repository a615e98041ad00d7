package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all form keybindings
type KeyMap struct {
	// Global
	ThemeCycle key.Binding
	Submit     key.Binding
	Next       key.Binding
	Prev       key.Binding
	Quit       key.Binding

	// Build selector
	BuildPrev key.Binding
	BuildNext key.Binding

	// Drop zone
	Browse      key.Binding
	RemoveImage key.Binding

	// Submit button / picker
	Activate key.Binding
	Cancel   key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	ThemeCycle: key.NewBinding(
		key.WithKeys("alt+q"),
		key.WithHelp("alt+q", "switch theme"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),

	BuildPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev build"),
	),
	BuildNext: key.NewBinding(
		key.WithKeys("right", "l", " "),
		key.WithHelp("→/l", "next build"),
	),

	Browse: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "browse"),
	),
	RemoveImage: key.NewBinding(
		key.WithKeys("x", "delete", "backspace"),
		key.WithHelp("x", "remove image"),
	),

	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// contextKeys adapts a slice of bindings to help.KeyMap.
type contextKeys []key.Binding

func (c contextKeys) ShortHelp() []key.Binding { return c }

func (c contextKeys) FullHelp() [][]key.Binding { return [][]key.Binding{c} }

// helpKeys returns the bindings relevant to the focused control.
func (m Model) helpKeys() contextKeys {
	if m.picking {
		return contextKeys{m.keys.Cancel, m.keys.ThemeCycle, m.keys.Quit}
	}

	var local []key.Binding
	switch m.focus {
	case focusBuild:
		local = []key.Binding{m.keys.BuildPrev, m.keys.BuildNext}
	case focusDrop:
		local = []key.Binding{m.keys.Browse}
		if m.image != nil {
			local = append(local, m.keys.RemoveImage)
		}
	case focusSubmit:
		local = []key.Binding{m.keys.Activate}
	}

	bindings := append(local, m.keys.Next, m.keys.Submit, m.keys.ThemeCycle, m.keys.Quit)
	return contextKeys(bindings)
}
