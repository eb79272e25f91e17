package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.form != nil {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor = clampCursor(m.cursor-wheelStep, len(m.view))
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor = clampCursor(m.cursor+wheelStep, len(m.view))
		return m, nil
	}

	var cmd tea.Cmd
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			cmd = m.press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if m.drag != nil && m.drag.mouse {
			if row, _ := m.hitTest(msg.X, msg.Y); row >= 0 {
				m.cursor = row
			}
		}
	case tea.MouseActionRelease:
		if m.drag != nil && m.drag.mouse {
			row, _ := m.hitTest(msg.X, msg.Y)
			m.drop(row)
		}
	}
	return m, cmd
}

func (m *Model) press(x, y int) tea.Cmd {
	if (y == filterLine || y == m.actionLine()) && m.drag != nil {
		m.cancelDrag()
	}
	switch y {
	case filterLine:
		if i := segmentAt(m.filterLabels(), 2, x); i >= 0 {
			m.setFilter(filterOrder[i])
		}
		return nil
	case m.actionLine():
		return m.runAction(segmentAt(m.actionLabels(), 1, x))
	}

	if m.mode == modeDrag {
		// a keyboard move in progress is finished by clicking the target
		row, _ := m.hitTest(x, y)
		m.drop(row)
		return nil
	}
	row, hit := m.hitTest(x, y)
	if row < 0 {
		return nil
	}
	m.cursor = row
	switch hit {
	case hitHandle:
		m.startDrag(row, true)
	case hitCheckbox:
		m.toggle(row)
	case hitExpand:
		m.expand(row)
	}
	return nil
}

func (m *Model) runAction(a int) tea.Cmd {
	var cmd tea.Cmd
	switch action(a) {
	case actionAdd:
		*m, cmd = m.openForm(nil)
	case actionEdit:
		if t := m.selected(); t != nil {
			*m, cmd = m.openForm(t)
		}
	case actionDelete:
		m.deleteSelected()
	case actionClear:
		m.clear()
	}
	return cmd
}
