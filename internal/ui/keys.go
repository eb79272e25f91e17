package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

type keyMap struct {
	Quit         key.Binding
	Interrupt    key.Binding
	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Clear        key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Expand       key.Binding
	Grab         key.Binding
	FilterAll    key.Binding
	FilterOpen   key.Binding
	FilterDone   key.Binding
	FilterNext   key.Binding
	Confirm      key.Binding
	Save         key.Binding
	Cancel       key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	PriorityUp   key.Binding
	PriorityDown key.Binding
	DueForward   key.Binding
	DueBack      key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:         binding(k.Quit, "quit", "ctrl+c"),
		Interrupt:    key.NewBinding(key.WithKeys("ctrl+c")),
		Add:          binding(k.Add, "add"),
		Edit:         binding(k.Edit, "edit"),
		Delete:       binding(k.Delete, "delete"),
		Clear:        binding(k.Clear, "clear"),
		Up:           binding(k.Up, "up", "up"),
		Down:         binding(k.Down, "down", "down"),
		Toggle:       binding(k.Toggle, "done"),
		Expand:       binding(k.Expand, "details"),
		Grab:         binding(k.Grab, "move"),
		FilterAll:    binding(k.FilterAll, "all"),
		FilterOpen:   binding(k.FilterOpen, "open"),
		FilterDone:   binding(k.FilterDone, "done"),
		FilterNext:   binding(k.FilterNext, "filter"),
		Confirm:      binding(k.Confirm, "ok"),
		Save:         binding(k.Save, "save"),
		Cancel:       binding(k.Cancel, "cancel"),
		NextField:    binding(k.NextField, "next field"),
		PrevField:    binding(k.PrevField, "prev field"),
		PriorityUp:   binding(k.PriorityUp, "priority", "left"),
		PriorityDown: binding(k.PriorityDown, "priority", "right"),
		DueForward:   binding(k.DueForward, "+1 day"),
		DueBack:      binding(k.DueBack, "-1 day"),
	}
}

func binding(k, desc string, extra ...string) key.Binding {
	keys := append([]string{k}, extra...)
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keyLabel(k), desc))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Expand, k.Grab, k.FilterNext, k.Add, k.Edit, k.Delete, k.Clear, k.Quit}
}

func (k keyMap) dragHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Grab, k.Cancel}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PriorityUp, k.DueForward, k.DueBack, k.Save, k.Cancel}
}
