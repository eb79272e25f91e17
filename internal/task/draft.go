package task

import "time"

// Draft holds the editable fields of the create/edit form.
type Draft struct {
	Name        string
	Description string
	Deadline    time.Time
	Priority    Priority
}

// NewDraft returns the create-mode defaults.
func NewDraft(today time.Time) Draft {
	return Draft{
		Deadline: Day(today),
		Priority: Medium,
	}
}

func DraftOf(t *Task) Draft {
	return Draft{
		Name:        t.Name,
		Description: t.Description,
		Deadline:    t.Deadline,
		Priority:    t.Priority,
	}
}

func (d Draft) Valid() bool {
	return d.Name != ""
}

// ApplyTo copies the draft into t. An invalid draft leaves t untouched.
func (d Draft) ApplyTo(t *Task) bool {
	if t == nil || !d.Valid() {
		return false
	}
	t.Name = d.Name
	t.Description = d.Description
	t.Deadline = Day(d.Deadline)
	t.Priority = d.Priority
	return true
}

func (d Draft) NewTask() (*Task, bool) {
	if !d.Valid() {
		return nil, false
	}
	return New(d.Name, d.Description, d.Deadline, d.Priority), true
}
