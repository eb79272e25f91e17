package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

// Row classes, named after the stylesheet sections.
const (
	classPriorityHigh   = "priority-high"
	classPriorityMedium = "priority-medium"
	classPriorityLow    = "priority-low"
	classCompleted      = "completed"
)

type styles struct {
	rows         map[string]lipgloss.Style
	desc         lipgloss.Style
	filterBar    lipgloss.Style
	filterActive lipgloss.Style
	selected     lipgloss.Style
	button       lipgloss.Style
	buttonClear  lipgloss.Style
	dialog       lipgloss.Style
	status       lipgloss.Style
	title        lipgloss.Style
}

func newStyles(s config.Stylesheet) styles {
	return styles{
		rows: map[string]lipgloss.Style{
			classPriorityHigh:   classStyle(s.PriorityHigh),
			classPriorityMedium: classStyle(s.PriorityMedium),
			classPriorityLow:    classStyle(s.PriorityLow),
			classCompleted:      classStyle(s.Completed),
		},
		desc:         classStyle(s.Description),
		filterBar:    classStyle(s.FilterBar),
		filterActive: classStyle(s.FilterActive),
		selected:     classStyle(s.Selected),
		button:       classStyle(s.Button),
		buttonClear:  classStyle(s.ButtonClear),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(s.Dialog.Foreground)).
			Padding(0, 1),
		status: classStyle(s.Status),
		title:  lipgloss.NewStyle().Bold(true),
	}
}

func classStyle(c config.Class) lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(c.Bold).
		Italic(c.Italic).
		Faint(c.Faint).
		Strikethrough(c.Strikethrough).
		Underline(c.Underline)
	if c.Foreground != "" {
		st = st.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		st = st.Background(lipgloss.Color(c.Background))
	}
	return st
}

func color(v string) lipgloss.TerminalColor {
	if v == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(v)
}

// rowClass picks exactly one class per task; completion wins over priority.
func rowClass(t *task.Task) string {
	if t.Completed {
		return classCompleted
	}
	switch t.Priority {
	case task.High:
		return classPriorityHigh
	case task.Low:
		return classPriorityLow
	default:
		return classPriorityMedium
	}
}

func (s styles) row(t *task.Task) lipgloss.Style {
	return s.rows[rowClass(t)]
}
