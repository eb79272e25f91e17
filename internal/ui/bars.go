package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/task"
)

const filterLine = 1

type action int

const (
	actionAdd action = iota
	actionEdit
	actionDelete
	actionClear
)

// segmentAt returns the index of the label under x when labels are laid
// out left to right separated by gap spaces, or -1.
func segmentAt(labels []string, gap, x int) int {
	pos := 0
	for i, l := range labels {
		w := lipgloss.Width(l)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + gap
	}
	return -1
}

var filterOrder = []task.Filter{task.FilterAll, task.FilterOpen, task.FilterDone}

func (m Model) filterLabels() []string {
	labels := make([]string, len(filterOrder))
	for i, f := range filterOrder {
		mark := "( )"
		if m.store.Filter() == f {
			mark = "(•)"
		}
		name := f.String()
		labels[i] = mark + " " + strings.ToUpper(name[:1]) + name[1:]
	}
	return labels
}

func (m Model) renderFilterBar() string {
	labels := m.filterLabels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		if m.store.Filter() == filterOrder[i] {
			parts[i] = m.styles.filterActive.Render(l)
		} else {
			parts[i] = m.styles.filterBar.Render(l)
		}
	}
	open, done := m.store.Counts()
	counts := m.styles.filterBar.Render(fmt.Sprintf("%d open, %d done", open, done))
	return strings.Join(parts, "  ") + "    " + counts
}

func (m Model) actionLine() int {
	return listTop + m.list.Height + 1
}

func (m Model) actionLabels() []string {
	return []string{
		"[" + m.cfg.Icons.Add + " Add]",
		"[" + m.cfg.Icons.Edit + " Edit]",
		"[" + m.cfg.Icons.Delete + " Delete]",
		"[Clear]",
	}
}

func (m Model) renderActions() string {
	labels := m.actionLabels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		if action(i) == actionClear {
			parts[i] = m.styles.buttonClear.Render(l)
		} else {
			parts[i] = m.styles.button.Render(l)
		}
	}
	return strings.Join(parts, " ")
}
