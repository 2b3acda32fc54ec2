package ui

import "github.com/charmbracelet/bubbles/key"

// --- Key Map ---

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	AddItem      key.Binding
	DeleteItem   key.Binding
	AddHeader    key.Binding
	RemoveHeader key.Binding
	AddFooter    key.Binding
	RemoveFooter key.Binding
	ToggleEmpty  key.Binding
	Sort         key.Binding
	Inspect      key.Binding
	Help         key.Binding
	Quit         key.Binding

	// Input mode.
	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap(vim bool) keyMap {
	up := []string{"up"}
	down := []string{"down"}
	upHelp, downHelp := "↑", "↓"
	if vim {
		up = append(up, "k")
		down = append(down, "j")
		upHelp, downHelp = "↑/k", "↓/j"
	}
	return keyMap{
		Up:           key.NewBinding(key.WithKeys(up...), key.WithHelp(upHelp, "Up")),
		Down:         key.NewBinding(key.WithKeys(down...), key.WithHelp(downHelp, "Down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "Page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "Page down")),
		Home:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "Top")),
		End:          key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "Bottom")),
		AddItem:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add item")),
		DeleteItem:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "Delete item")),
		AddHeader:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Add header")),
		RemoveHeader: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "Remove header")),
		AddFooter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Add footer")),
		RemoveFooter: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "Remove footer")),
		ToggleEmpty:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Empty view")),
		Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Sort")),
		Inspect:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Inspect")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Add")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
	}
}

// ShortHelp implements help.KeyMap for the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.AddItem, k.DeleteItem, k.AddHeader, k.AddFooter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.AddItem, k.DeleteItem, k.Sort},
		{k.AddHeader, k.RemoveHeader, k.AddFooter, k.RemoveFooter},
		{k.ToggleEmpty, k.Inspect, k.Help, k.Quit},
	}
}

// inputHelp lists the bindings active while the item prompt is open.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
