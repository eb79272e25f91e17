package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tasklist/internal/config"
)

func (m *Model) startDrag(row int, mouse bool) {
	if row < 0 || row >= len(m.view) {
		return
	}
	t := m.view[row]
	m.drag = &dragState{id: t.ID, name: t.Name, fromRow: row, mouse: mouse}
	m.mode = modeDrag
	m.cursor = row
	m.status = fmt.Sprintf("Moving %q: pick a row and drop", t.Name)
}

func (m *Model) cancelDrag() {
	m.drag = nil
	m.mode = modeList
	m.status = "Move cancelled"
}

// drop moves the dragged task to the store position of the task shown in
// row. In name matching mode the row index itself is the target, even when a
// filter hides tasks. Dropping a row onto itself is not accepted.
func (m *Model) drop(row int) {
	d := m.drag
	if d == nil {
		return
	}
	if row < 0 || row >= len(m.view) || row == d.fromRow {
		m.cancelDrag()
		return
	}
	m.drag = nil
	m.mode = modeList

	var target int
	var moved bool
	if m.cfg.DragMatch == config.DragMatchName {
		target = row
		moved = m.store.MoveByName(d.name, target)
	} else {
		target = m.store.Index(m.view[row])
		moved = m.store.MoveByID(d.id, target)
	}
	if !moved {
		m.status = "Nothing to move"
		return
	}
	m.status = fmt.Sprintf("Moved %q", d.name)
	log.WithFields(log.Fields{"id": d.id, "name": d.name, "index": target}).Debug("task moved")
	if t := m.store.Find(d.id); t != nil {
		m.selectTask(t)
	}
}

func (m Model) updateDragMode(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.view))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.view))
	case key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Confirm):
		m.drop(m.cursor)
	}
	return m
}
