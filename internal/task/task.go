package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority int

const (
	High Priority = iota
	Medium
	Low
)

var priorityNames = [...]string{"HIGH", "MEDIUM", "LOW"}

func (p Priority) String() string {
	if p < High || p > Low {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority accepts the names in any case.
func ParsePriority(v string) (Priority, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	for i, name := range priorityNames {
		if v == name {
			return Priority(i), nil
		}
	}
	return Medium, fmt.Errorf("unknown priority %q", v)
}

// Next and Prev walk HIGH, MEDIUM, LOW and wrap around.
func (p Priority) Next() Priority {
	return Priority((int(p) + 1) % len(priorityNames))
}

func (p Priority) Prev() Priority {
	return Priority((int(p) + len(priorityNames) - 1) % len(priorityNames))
}

type Task struct {
	ID          string
	Name        string
	Description string
	Deadline    time.Time
	Priority    Priority
	Completed   bool
}

func New(name, description string, deadline time.Time, priority Priority) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Deadline:    Day(deadline),
		Priority:    priority,
	}
}

func (t *Task) String() string {
	return t.Name
}

// Day truncates t to local midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
