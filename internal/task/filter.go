package task

import "strings"

type Filter int

const (
	FilterAll Filter = iota
	FilterOpen
	FilterDone
)

var filterNames = [...]string{"all", "open", "done"}

func (f Filter) String() string {
	if f < FilterAll || f > FilterDone {
		return filterNames[FilterAll]
	}
	return filterNames[f]
}

func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterOpen:
		return !t.Completed
	case FilterDone:
		return t.Completed
	default:
		return true
	}
}

func (f Filter) Next() Filter {
	return Filter((int(f) + 1) % len(filterNames))
}

// ParseFilter falls back to FilterAll for anything it does not recognize.
func ParseFilter(v string) Filter {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range filterNames {
		if v == name {
			return Filter(i)
		}
	}
	switch v {
	case "pending", "todo":
		return FilterOpen
	case "completed":
		return FilterDone
	}
	return FilterAll
}
