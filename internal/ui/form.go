package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/task"
)

const dateLayout = "2006-01-02"

type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldDeadline
	fieldPriority
	fieldCount
)

var fieldLabels = [...]string{"Title", "Description", "Deadline", "Priority"}

// formState is the modal create/edit form. target is nil in create mode.
type formState struct {
	target   *task.Task
	name     textinput.Model
	desc     textarea.Model
	deadline textinput.Model
	priority task.Priority
	focus    formField
}

func newForm(target *task.Task, today time.Time, width int) *formState {
	d := task.NewDraft(today)
	if target != nil {
		d = task.DraftOf(target)
	}

	name := textinput.New()
	name.Placeholder = "Task title"
	name.CharLimit = 256
	name.SetValue(d.Name)

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 2000
	desc.ShowLineNumbers = false
	desc.SetHeight(3)
	desc.SetValue(d.Description)

	deadline := textinput.New()
	deadline.Placeholder = dateLayout
	deadline.CharLimit = len(dateLayout)
	deadline.SetValue(d.Deadline.Format(dateLayout))

	f := &formState{
		target:   target,
		name:     name,
		desc:     desc,
		deadline: deadline,
		priority: d.Priority,
	}
	f.resize(width)
	f.setFocus(fieldName)
	return f
}

func (f *formState) title() string {
	if f.target != nil {
		return "Edit Task"
	}
	return "New Task"
}

func (f *formState) resize(width int) {
	w := max(width-24, 16)
	f.name.Width = w
	f.deadline.Width = len(dateLayout) + 1
	f.desc.SetWidth(w)
}

func (f *formState) setFocus(field formField) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.desc.Blur()
	f.deadline.Blur()
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldDescription:
		return f.desc.Focus()
	case fieldDeadline:
		return f.deadline.Focus()
	}
	return nil
}

func (f *formState) shiftDeadline(days int) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(f.deadline.Value()), time.Local)
	if err != nil {
		return
	}
	f.deadline.SetValue(d.AddDate(0, 0, days).Format(dateLayout))
	f.deadline.CursorEnd()
}

// draft reads the widgets. The name is taken verbatim.
func (f *formState) draft() (task.Draft, error) {
	d := task.Draft{
		Name:        f.name.Value(),
		Description: f.desc.Value(),
		Priority:    f.priority,
	}
	deadline, err := time.ParseInLocation(dateLayout, strings.TrimSpace(f.deadline.Value()), time.Local)
	if err != nil {
		return d, err
	}
	d.Deadline = deadline
	return d, nil
}

// update handles field navigation and widget input. It reports whether the
// key asked to submit the form.
func (f *formState) update(msg tea.Msg, keys keyMap) (submit bool, cmd tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, f.forward(msg)
	}
	switch {
	case key.Matches(km, keys.Save):
		return true, nil
	case key.Matches(km, keys.NextField):
		return false, f.setFocus(f.focus + 1)
	case key.Matches(km, keys.PrevField):
		return false, f.setFocus(f.focus - 1)
	case f.focus != fieldDescription && key.Matches(km, keys.Confirm):
		return true, nil
	}
	switch f.focus {
	case fieldPriority:
		switch {
		case key.Matches(km, keys.PriorityUp):
			f.priority = f.priority.Prev()
		case key.Matches(km, keys.PriorityDown):
			f.priority = f.priority.Next()
		}
		return false, nil
	case fieldDeadline:
		switch {
		case key.Matches(km, keys.DueForward):
			f.shiftDeadline(1)
			return false, nil
		case key.Matches(km, keys.DueBack):
			f.shiftDeadline(-1)
			return false, nil
		}
	}
	return false, f.forward(msg)
}

func (f *formState) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDeadline:
		f.deadline, cmd = f.deadline.Update(msg)
	}
	return cmd
}

func (f *formState) view(now time.Time) string {
	var b strings.Builder
	b.WriteString(f.title())
	b.WriteString("\n\n")
	for i, label := range fieldLabels {
		marker := " "
		if formField(i) == f.focus {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %-12s ", marker, label+":")
		switch formField(i) {
		case fieldName:
			b.WriteString(f.name.View())
		case fieldDescription:
			pad := strings.Repeat(" ", 15)
			b.WriteString(strings.ReplaceAll(f.desc.View(), "\n", "\n"+pad))
		case fieldDeadline:
			b.WriteString(f.deadline.View())
			if d, err := f.draft(); err == nil {
				b.WriteString("  (" + relativeDay(d.Deadline, now) + ")")
			} else {
				b.WriteString("  (invalid date)")
			}
		case fieldPriority:
			fmt.Fprintf(&b, "< %s >", f.priority)
		}
		b.WriteString("\n")
	}
	return b.String()
}
