package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tasklist/internal/task"
)

// rowSlot is per-slot view state. It belongs to the list position, not to
// the task, and is dropped as soon as the slot shows another task.
type rowSlot struct {
	taskID   string
	expanded bool
}

type rowSpan struct {
	start int
	lines int
}

type rowHit int

const (
	hitNone rowHit = iota
	hitRow
	hitHandle
	hitCheckbox
	hitExpand
)

// rowColumns are the x ranges [start, end) of the clickable parts of a
// row's first line: "> ≡ [x] name  ▼".
type rowColumns struct {
	handle   [2]int
	checkbox [2]int
	name     int
	expand   [2]int
}

func columnsFor(handle, name, glyph string) rowColumns {
	hw := lipgloss.Width(handle)
	var c rowColumns
	c.handle = [2]int{2, 2 + hw}
	c.checkbox = [2]int{3 + hw, 6 + hw}
	c.name = 7 + hw
	gx := c.name + lipgloss.Width(name) + 2
	c.expand = [2]int{gx, gx + lipgloss.Width(glyph)}
	return c
}

func within(x int, r [2]int) bool {
	return x >= r[0] && x < r[1]
}

func descriptionLines(desc string) []string {
	if strings.TrimSpace(desc) == "" {
		return []string{"(no description)"}
	}
	return strings.Split(strings.TrimRight(desc, "\n"), "\n")
}

func (m Model) rowSpans() []rowSpan {
	spans := make([]rowSpan, len(m.view))
	line := 0
	for i, t := range m.view {
		n := 2
		if m.slots[i].expanded {
			n += len(descriptionLines(t.Description))
		}
		spans[i] = rowSpan{start: line, lines: n}
		line += n
	}
	return spans
}

func (m Model) glyph(i int) string {
	if m.slots[i].expanded {
		return m.cfg.Icons.Collapse
	}
	return m.cfg.Icons.Expand
}

func (m Model) renderRows() string {
	if len(m.view) == 0 {
		if m.store.Len() == 0 {
			return fmt.Sprintf("No tasks yet. Press '%s' to add one.", keyLabel(m.cfg.Keys.Add))
		}
		return fmt.Sprintf("No %s tasks.", m.store.Filter())
	}
	var b strings.Builder
	for i, t := range m.view {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(i, t))
	}
	return b.String()
}

func (m Model) renderRow(i int, t *task.Task) string {
	cursor := " "
	if i == m.cursor {
		cursor = m.styles.selected.Render(">")
	}
	handle := m.cfg.Icons.Handle
	if m.drag != nil && m.drag.fromRow == i {
		handle = m.styles.selected.Render(handle)
	}
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	style := m.styles.row(t)
	c := columnsFor(m.cfg.Icons.Handle, t.Name, m.glyph(i))
	indent := strings.Repeat(" ", c.name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s  %s\n", cursor, handle, checkbox, style.Render(t.Name), m.glyph(i))
	b.WriteString(indent)
	b.WriteString(style.Faint(true).Render(metaLine(t, m.now())))
	if m.slots[i].expanded {
		for _, line := range descriptionLines(t.Description) {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(m.styles.desc.Render(line))
		}
	}
	return b.String()
}

func metaLine(t *task.Task, now time.Time) string {
	return fmt.Sprintf("Due %s (%s)  •  %s",
		t.Deadline.Format(dateLayout), relativeDay(t.Deadline, now), t.Priority)
}

func relativeDay(deadline, now time.Time) string {
	d, today := task.Day(deadline), task.Day(now)
	switch {
	case d.Equal(today):
		return "today"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	}
	return humanize.RelTime(d, today, "ago", "from now")
}

// hitTest maps a screen cell to a row and the part of it under the pointer.
func (m Model) hitTest(x, y int) (int, rowHit) {
	if y < listTop || y >= listTop+m.list.Height {
		return -1, hitNone
	}
	line := y - listTop + m.list.YOffset
	for i, span := range m.rowSpans() {
		if line < span.start || line >= span.start+span.lines {
			continue
		}
		if line != span.start {
			return i, hitRow
		}
		c := columnsFor(m.cfg.Icons.Handle, m.view[i].Name, m.glyph(i))
		switch {
		case within(x, c.handle):
			return i, hitHandle
		case within(x, c.checkbox):
			return i, hitCheckbox
		case within(x, c.expand):
			return i, hitExpand
		}
		return i, hitRow
	}
	return -1, hitNone
}

// ensureVisible scrolls the list so the cursor row is fully on screen.
func (m *Model) ensureVisible() {
	if len(m.view) == 0 {
		m.list.GotoTop()
		return
	}
	span := m.rowSpans()[m.cursor]
	switch {
	case span.start < m.list.YOffset:
		m.list.SetYOffset(span.start)
	case span.start+span.lines > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(span.start + span.lines - m.list.Height)
	}
}
