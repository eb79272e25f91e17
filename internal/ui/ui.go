package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeDrag
)

// Screen rows above the list: title, filter bar, blank line.
const listTop = 3

// Screen rows below the list: blank line, action row, status, help.
const footerLines = 4

const (
	defaultWidth  = 56
	defaultHeight = 30
)

type dragState struct {
	id      string
	name    string
	fromRow int
	mouse   bool
}

type Model struct {
	store  *task.Store
	cfg    config.Config
	keys   keyMap
	styles styles
	help   help.Model
	list   viewport.Model
	now    func() time.Time

	view      []*task.Task
	slots     []rowSlot
	resetRows bool
	cursor    int
	mode      mode
	form      *formState
	drag      *dragState
	status    string
	width     int
	height    int
}

func New(store *task.Store, cfg config.Config, sheet config.Stylesheet) Model {
	store.SetFilter(task.ParseFilter(cfg.DefaultFilter))
	m := Model{
		store:  store,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		styles: newStyles(sheet),
		help:   help.New(),
		list:   viewport.New(defaultWidth, defaultHeight-listTop-footerLines),
		now:    time.Now,
		mode:   modeList,
		status: fmt.Sprintf("Press '%s' to add, %s to complete, '%s' to move.",
			keyLabel(cfg.Keys.Add), keyLabel(cfg.Keys.Toggle), keyLabel(cfg.Keys.Grab)),
	}
	m.list.MouseWheelEnabled = false
	m.resize(defaultWidth, defaultHeight)
	m.sync()
	return m
}

func Run(store *task.Store, cfg config.Config, sheet config.Stylesheet) error {
	program := tea.NewProgram(New(store, cfg, sheet), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	default:
		if m.form != nil {
			_, cmd = m.form.update(msg, m.keys)
		}
	}
	m.sync()
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.list.Width = width
	m.list.Height = max(height-listTop-footerLines, 3)
	m.help.Width = width
	if m.form != nil {
		m.form.resize(width)
	}
}

// sync recomputes the filtered view, carries row slots over where they
// still show the same task, and re-renders the list content.
func (m *Model) sync() {
	m.view = m.store.View()
	slots := make([]rowSlot, len(m.view))
	for i, t := range m.view {
		if !m.resetRows && i < len(m.slots) && m.slots[i].taskID == t.ID {
			slots[i] = m.slots[i]
			continue
		}
		slots[i] = rowSlot{taskID: t.ID}
	}
	m.slots = slots
	m.resetRows = false
	m.cursor = clampCursor(m.cursor, len(m.view))
	m.list.SetContent(m.renderRows())
	m.ensureVisible()
}

func (m Model) selected() *task.Task {
	if len(m.view) == 0 {
		return nil
	}
	return m.view[clampCursor(m.cursor, len(m.view))]
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		return m, tea.Quit
	}
	switch m.mode {
	case modeForm:
		return m.updateFormMode(msg)
	case modeDrag:
		return m.updateDragMode(msg), nil
	}
	return m.updateListMode(msg)
}

func (m Model) updateListMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.view))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.view))
	case key.Matches(msg, m.keys.Toggle):
		m.toggle(m.cursor)
	case key.Matches(msg, m.keys.Expand):
		m.expand(m.cursor)
	case key.Matches(msg, m.keys.Grab):
		m.startDrag(m.cursor, false)
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(task.FilterAll)
	case key.Matches(msg, m.keys.FilterOpen):
		m.setFilter(task.FilterOpen)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(task.FilterDone)
	case key.Matches(msg, m.keys.FilterNext):
		m.setFilter(m.store.Filter().Next())
	case key.Matches(msg, m.keys.Add):
		return m.openForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if t := m.selected(); t != nil {
			return m.openForm(t)
		}
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Clear):
		m.clear()
	}
	return m, nil
}

func (m *Model) toggle(row int) {
	if row < 0 || row >= len(m.view) {
		return
	}
	t := m.view[row]
	m.store.Toggle(t)
	m.resetRows = true
	if t.Completed {
		m.status = fmt.Sprintf("Completed %q", t.Name)
	} else {
		m.status = fmt.Sprintf("Reopened %q", t.Name)
	}
	log.WithFields(log.Fields{"id": t.ID, "name": t.Name, "completed": t.Completed}).Debug("task toggled")
}

func (m *Model) expand(row int) {
	if row < 0 || row >= len(m.slots) {
		return
	}
	m.slots[row].expanded = !m.slots[row].expanded
}

func (m *Model) setFilter(f task.Filter) {
	if m.store.Filter() == f {
		return
	}
	m.store.SetFilter(f)
	m.status = "Showing " + f.String() + " tasks"
	log.WithField("filter", f.String()).Debug("filter changed")
}

func (m *Model) deleteSelected() {
	t := m.selected()
	if t == nil {
		return
	}
	if m.store.Remove(t) {
		m.status = fmt.Sprintf("Deleted %q", t.Name)
		log.WithFields(log.Fields{"id": t.ID, "name": t.Name}).Debug("task deleted")
	}
}

func (m *Model) clear() {
	n := m.store.Len()
	m.store.Clear()
	m.cursor = 0
	m.status = "Cleared all tasks"
	log.WithField("count", n).Debug("tasks cleared")
}

func (m Model) openForm(target *task.Task) (Model, tea.Cmd) {
	m.form = newForm(target, m.now(), m.width)
	m.mode = modeForm
	m.status = m.form.title() + ": tab to move between fields"
	return m, m.form.setFocus(fieldName)
}

func (m Model) closeForm(status string) Model {
	m.form = nil
	m.mode = modeList
	m.status = status
	return m
}

func (m Model) updateFormMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		return m.closeForm("Cancelled"), nil
	}
	submit, cmd := m.form.update(msg, m.keys)
	if !submit {
		return m, cmd
	}
	return m.submitForm(), nil
}

// submitForm applies the form. An empty title behaves like cancel.
func (m Model) submitForm() Model {
	f := m.form
	if f.name.Value() == "" {
		return m.closeForm("Cancelled: title is empty")
	}
	d, err := f.draft()
	if err != nil {
		m.status = fmt.Sprintf("deadline invalid: %v", err)
		return m
	}
	if f.target != nil {
		d.ApplyTo(f.target)
		log.WithFields(log.Fields{"id": f.target.ID, "name": f.target.Name}).Debug("task edited")
		return m.closeForm("Updated task")
	}
	t, ok := d.NewTask()
	if !ok {
		return m.closeForm("Cancelled")
	}
	m.store.Add(t)
	log.WithFields(log.Fields{"id": t.ID, "name": t.Name}).Debug("task added")
	m = m.closeForm("Added task")
	m.selectTask(t)
	return m
}

// selectTask moves the cursor to t if the current filter shows it.
func (m *Model) selectTask(t *task.Task) {
	for i, x := range m.store.View() {
		if x == t {
			m.cursor = i
			return
		}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Task Manager"))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")
	if m.form != nil {
		body := m.styles.dialog.Render(m.form.view(m.now()))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Left, body))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderActions())
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.helpBindings()))
	return b.String()
}

func (m Model) helpBindings() []key.Binding {
	switch m.mode {
	case modeForm:
		return m.keys.formHelp()
	case modeDrag:
		return m.keys.dragHelp()
	}
	return m.keys.listHelp()
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
