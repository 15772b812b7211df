package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todocard/internal/config"
)

type keyMap struct {
	Quit       key.Binding
	Add        key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Menu       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	ClearAll   key.Binding
	NextFilter key.Binding
	FilterAll  key.Binding
	FilterPend key.Binding
	FilterDone key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Yes        key.Binding
	No         key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:       bind("quit", k.Quit, "ctrl+c"),
		Add:        bind("add", k.Add),
		Up:         bind("up", k.Up, "up"),
		Down:       bind("down", k.Down, "down"),
		Toggle:     bind("toggle", k.Toggle),
		Menu:       bind("menu", k.Menu),
		Edit:       bind("edit", k.Edit),
		Delete:     bind("delete", k.Delete),
		ClearAll:   bind("clear all", k.ClearAll),
		NextFilter: bind("filter", k.NextFilter),
		FilterAll:  bind("all", "1"),
		FilterPend: bind("pending", "2"),
		FilterDone: bind("completed", "3"),
		Confirm:    bind("confirm", k.Confirm),
		Cancel:     bind("cancel", k.Cancel),
		Yes:        bind("yes", "y", "Y"),
		No:         bind("no", "n", "N"),
	}
}

func bind(desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys[0]), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp and FullHelp satisfy help.KeyMap for the list screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Menu, k.NextFilter, k.ClearAll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle},
		{k.Menu, k.Edit, k.Delete},
		{k.NextFilter, k.FilterAll, k.FilterPend, k.FilterDone},
		{k.ClearAll, k.Quit},
	}
}
