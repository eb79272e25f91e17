package task

// Store is the ordered, in-memory list of tasks plus the active filter.
// It is owned by the UI event loop and is not safe for concurrent use.
type Store struct {
	tasks  []*Task
	filter Filter
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the current order.
func (s *Store) Tasks() []*Task {
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Filter() Filter {
	return s.filter
}

func (s *Store) SetFilter(f Filter) {
	s.filter = f
}

// View projects the store through the active filter, preserving order.
func (s *Store) View() []*Task {
	view := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.filter.Match(t) {
			view = append(view, t)
		}
	}
	return view
}

func (s *Store) Counts() (open, done int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return open, done
}

func (s *Store) Index(t *Task) int {
	for i, x := range s.tasks {
		if x == t {
			return i
		}
	}
	return -1
}

func (s *Store) Find(id string) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindByName returns the first task in store order with the given name.
func (s *Store) FindByName(name string) *Task {
	for _, t := range s.tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (s *Store) Add(t *Task) {
	if t == nil || t.Name == "" {
		return
	}
	s.tasks = append(s.tasks, t)
}

func (s *Store) Insert(i int, t *Task) {
	if t == nil || t.Name == "" {
		return
	}
	i = clamp(i, 0, len(s.tasks))
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

func (s *Store) Remove(t *Task) bool {
	i := s.Index(t)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

func (s *Store) Clear() {
	s.tasks = nil
}

func (s *Store) Toggle(t *Task) {
	s.SetCompleted(t, !t.Completed)
}

// SetCompleted updates the flag and moves t to the open/done boundary:
// a completed task goes to the end, a reopened one goes in front of the
// first completed task in the current order.
func (s *Store) SetCompleted(t *Task, done bool) {
	if !s.Remove(t) {
		return
	}
	t.Completed = done
	if done {
		s.tasks = append(s.tasks, t)
		return
	}
	idx := 0
	for idx < len(s.tasks) && !s.tasks[idx].Completed {
		idx++
	}
	s.Insert(idx, t)
}

// MoveByName relocates the first task named name to target. Tasks sharing
// a name cannot be told apart here.
func (s *Store) MoveByName(name string, target int) bool {
	return s.move(s.FindByName(name), target)
}

func (s *Store) MoveByID(id string, target int) bool {
	return s.move(s.Find(id), target)
}

// move removes t and reinserts it at target, clamped to the shortened list.
func (s *Store) move(t *Task, target int) bool {
	if t == nil || !s.Remove(t) {
		return false
	}
	s.Insert(min(target, len(s.tasks)), t)
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
