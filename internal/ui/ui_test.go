package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

func newTestModel(t *testing.T, cfg config.Config, names ...string) (Model, *task.Store) {
	t.Helper()
	store := task.NewStore()
	for _, n := range names {
		store.Add(task.New(n, "", fixedNow, task.Medium))
	}
	m := New(store, cfg, config.DefaultStylesheet())
	m.now = func() time.Time { return fixedNow }
	return m, store
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyPress(k))
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, string(r))
	}
	return m
}

func click(x, y int) []tea.Msg {
	return []tea.Msg{
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}
}

func order(s *task.Store) string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Tasks() {
		names = append(names, t.Name)
	}
	return strings.Join(names, ",")
}

func TestAddTaskThroughForm(t *testing.T) {
	m, store := newTestModel(t, config.Default())
	m = press(m, "a")
	if m.mode != modeForm || m.form == nil || m.form.target != nil {
		t.Fatalf("expected create form, mode=%v", m.mode)
	}
	m = typeText(m, "Buy milk")
	m = press(m, "enter")

	if m.mode != modeList || m.form != nil {
		t.Fatalf("form should close after submit")
	}
	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
	got := store.Tasks()[0]
	if got.Name != "Buy milk" || got.Priority != task.Medium || got.Completed {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.Deadline.Format(dateLayout) != fixedNow.Format(dateLayout) {
		t.Fatalf("deadline = %s, want today", got.Deadline.Format(dateLayout))
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Fatalf("new task not rendered:\n%s", m.View())
	}
}

func TestAddAppendsAtEnd(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "a", "b")
	store.Toggle(store.Tasks()[0])
	m = press(m, "a")
	m = typeText(m, "c")
	m = press(m, "enter")
	if got := order(store); got != "b,a,c" {
		t.Fatalf("order = %s, want b,a,c", got)
	}
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want the new task", m.cursor)
	}
}

func TestSubmitEmptyNameIsCancel(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "keep")
	m = press(m, "a", "tab")
	m = typeText(m, "description only")
	m = press(m, "ctrl+s")
	if store.Len() != 1 {
		t.Fatalf("store len = %d, want 1", store.Len())
	}
	if m.form != nil || m.mode != modeList {
		t.Fatalf("empty title should close the form")
	}
}

func TestEditThenCancelLeavesTask(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "report")
	tk := store.Tasks()[0]
	tk.Description = "quarterly"
	before := *tk

	m = press(m, "e")
	if m.form == nil || m.form.target != tk {
		t.Fatalf("edit form should target the selected task")
	}
	m = typeText(m, " draft")
	m = press(m, "tab", "tab", "tab", "+")
	m = press(m, "esc")

	if *tk != before {
		t.Fatalf("cancelled edit changed the task: %+v vs %+v", *tk, before)
	}
	if m.form != nil {
		t.Fatalf("form should be closed")
	}
}

func TestEditAppliesInPlace(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "report")
	tk := store.Tasks()[0]
	id := tk.ID

	m = press(m, "e")
	m = typeText(m, " v2")
	m = press(m, "tab", "tab", "]", "]", "tab", "+")
	m = press(m, "enter")

	if store.Len() != 1 || store.Tasks()[0] != tk {
		t.Fatalf("edit must keep the same record")
	}
	if tk.ID != id || tk.Name != "report v2" || tk.Priority != task.High {
		t.Fatalf("unexpected task %+v", tk)
	}
	if want := fixedNow.AddDate(0, 0, 2).Format(dateLayout); tk.Deadline.Format(dateLayout) != want {
		t.Fatalf("deadline = %s, want %s", tk.Deadline.Format(dateLayout), want)
	}
}

func TestEditWithEmptyNameIsCancel(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "ab")
	m = press(m, "e", "backspace", "backspace", "enter")
	if got := store.Tasks()[0].Name; got != "ab" {
		t.Fatalf("name = %q, want unchanged", got)
	}
	if m.form != nil {
		t.Fatalf("form should be closed")
	}
}

func TestInvalidDeadlineKeepsFormOpen(t *testing.T) {
	m, store := newTestModel(t, config.Default())
	m = press(m, "a")
	m = typeText(m, "x")
	m = press(m, "tab", "tab")
	for range dateLayout {
		m = press(m, "backspace")
	}
	m = typeText(m, "soon")
	m = press(m, "enter")

	if m.form == nil {
		t.Fatalf("form should stay open on a bad date")
	}
	if !strings.Contains(m.status, "deadline invalid") {
		t.Fatalf("status = %q", m.status)
	}
	if store.Len() != 0 {
		t.Fatalf("nothing should be added yet")
	}
}

func TestDescriptionAcceptsNewlines(t *testing.T) {
	m, store := newTestModel(t, config.Default())
	m = press(m, "a")
	m = typeText(m, "t")
	m = press(m, "tab")
	m = typeText(m, "one")
	m = press(m, "enter")
	m = typeText(m, "two")
	if m.form == nil {
		t.Fatalf("enter in the description must not submit")
	}
	m = press(m, "ctrl+s")
	if store.Len() != 1 || store.Tasks()[0].Description != "one\ntwo" {
		t.Fatalf("description = %q", store.Tasks()[0].Description)
	}
}

func TestToggleScenario(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B", "C")
	store.Tasks()[2].Completed = true

	m = press(m, "j", " ")
	if got := order(store); got != "A,C,B" {
		t.Fatalf("after completing B: %s", got)
	}
	// cursor stays on row 1, which now shows C
	m = press(m, " ")
	if got := order(store); got != "A,C,B" {
		t.Fatalf("after reopening C: %s", got)
	}
	ts := store.Tasks()
	if ts[0].Completed || ts[1].Completed || !ts[2].Completed {
		t.Fatalf("unexpected flags %v %v %v", ts[0].Completed, ts[1].Completed, ts[2].Completed)
	}
}

func TestFilterKeysDoNotReorder(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "a", "b", "c", "d")
	m = press(m, "j", " ")
	before := order(store)

	m = press(m, "2")
	if len(m.view) != 3 {
		t.Fatalf("open view has %d rows", len(m.view))
	}
	m = press(m, "3")
	if len(m.view) != 1 || m.view[0].Name != "b" {
		t.Fatalf("done view wrong")
	}
	m = press(m, "f", "f", "f", "1")
	if store.Filter() != task.FilterAll || order(store) != before {
		t.Fatalf("filtering changed the store: %s vs %s", order(store), before)
	}
	if len(m.view) != 4 {
		t.Fatalf("all view has %d rows", len(m.view))
	}
}

func TestDefaultFilterFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultFilter = "done"
	m, store := newTestModel(t, cfg, "a")
	if store.Filter() != task.FilterDone || len(m.view) != 0 {
		t.Fatalf("default filter not applied")
	}
	if !strings.Contains(m.View(), "No done tasks") {
		t.Fatalf("expected empty-filter hint:\n%s", m.View())
	}
}

func TestDeleteAndClear(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "a", "b", "c")
	m = press(m, "j", "d")
	if got := order(store); got != "a,c" {
		t.Fatalf("after delete: %s", got)
	}
	m = press(m, "C")
	if store.Len() != 0 {
		t.Fatalf("clear left %d tasks", store.Len())
	}
	// no selection: silent no-ops
	m = press(m, "d", "e", " ", "m")
	if m.mode != modeList || m.form != nil || store.Len() != 0 {
		t.Fatalf("operations on an empty list should do nothing")
	}
}

func TestRowStartsCollapsedAndResetsOnReuse(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "a", "b")
	store.Tasks()[0].Description = "first line\nsecond line"

	if strings.Contains(m.View(), "second line") {
		t.Fatalf("description should start collapsed")
	}
	m = press(m, "enter")
	if !m.slots[0].expanded || !strings.Contains(m.View(), "second line") {
		t.Fatalf("enter should expand the row")
	}
	m = press(m, "d")
	if m.slots[0].expanded {
		t.Fatalf("slot showing another task must reset to collapsed")
	}
}

func TestToggleCollapsesRows(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "a", "b")
	m = press(m, "j", "enter")
	if !m.slots[1].expanded {
		t.Fatalf("row 1 should be expanded")
	}
	m = press(m, "k", " ")
	for i, s := range m.slots {
		if s.expanded {
			t.Fatalf("slot %d still expanded after a completion toggle", i)
		}
	}
}

func TestKeyboardMove(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B", "C", "D")
	m = press(m, "m")
	if m.mode != modeDrag {
		t.Fatalf("grab should enter move mode")
	}
	m = press(m, "j", "j", "m")
	if got := order(store); got != "B,C,A,D" {
		t.Fatalf("order = %s, want B,C,A,D", got)
	}
	if m.mode != modeList || m.view[m.cursor].Name != "A" {
		t.Fatalf("cursor should follow the moved task")
	}
}

func TestMoveOntoSourceIsRejected(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B")
	m = press(m, "m", "enter")
	if got := order(store); got != "A,B" {
		t.Fatalf("order = %s", got)
	}
	if m.mode != modeList || m.drag != nil {
		t.Fatalf("drag state not cleared")
	}
	m = press(m, "m", "j", "esc")
	if got := order(store); got != "A,B" || m.mode != modeList {
		t.Fatalf("cancelled move changed order: %s", got)
	}
}

func TestMoveWithDuplicateNames(t *testing.T) {
	byID, idStore := newTestModel(t, config.Default(), "x", "y", "x")
	second := idStore.Tasks()[2]
	press(byID, "j", "j", "m", "k", "k", "m")
	if idStore.Tasks()[0] != second {
		t.Fatalf("id matching should move the grabbed task")
	}

	cfg := config.Default()
	cfg.DragMatch = config.DragMatchName
	byName, nameStore := newTestModel(t, cfg, "x", "y", "x")
	first := nameStore.Tasks()[0]
	press(byName, "j", "j", "m", "k", "k", "m")
	// name matching finds the first "x", which lands where it already was
	if nameStore.Tasks()[0] != first || nameStore.Tasks()[2] == first {
		t.Fatalf("name matching should relocate the first match")
	}
}

func TestMoveUnderFilterUsesStorePosition(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B", "C", "D")
	store.Tasks()[1].Completed = true
	m = press(m, "2")
	if len(m.view) != 3 {
		t.Fatalf("open view has %d rows", len(m.view))
	}
	m = press(m, "m", "j", "j", "m")
	if got := order(store); got != "B,C,D,A" {
		t.Fatalf("order = %s, want B,C,D,A", got)
	}
}

func TestMoveUnderFilterByNameUsesRowPosition(t *testing.T) {
	cfg := config.Default()
	cfg.DragMatch = config.DragMatchName
	m, store := newTestModel(t, cfg, "A", "B", "C", "D")
	store.Tasks()[1].Completed = true
	m = press(m, "2", "m", "j", "j", "m")
	if got := order(store); got != "B,C,A,D" {
		t.Fatalf("order = %s, want B,C,A,D", got)
	}
	if m.mode != modeList {
		t.Fatalf("mode = %v after drop", m.mode)
	}
}

func TestMouseCheckboxAndExpand(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B")
	c := columnsFor(m.cfg.Icons.Handle, "B", m.cfg.Icons.Expand)
	m = send(m, click(c.checkbox[0], listTop+2)...)
	if !store.Tasks()[1].Completed {
		t.Fatalf("clicking the checkbox should complete B")
	}

	c = columnsFor(m.cfg.Icons.Handle, "A", m.cfg.Icons.Expand)
	m = send(m, click(c.expand[0], listTop)...)
	if !m.slots[0].expanded {
		t.Fatalf("clicking the glyph should expand A")
	}
}

func TestMouseDragAndDrop(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B", "C")
	c := columnsFor(m.cfg.Icons.Handle, "A", m.cfg.Icons.Expand)
	m = send(m,
		tea.MouseMsg{X: c.handle[0], Y: listTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 10, Y: listTop + 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 10, Y: listTop + 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	if got := order(store); got != "B,C,A" {
		t.Fatalf("order = %s, want B,C,A", got)
	}
	if m.drag != nil || m.mode != modeList {
		t.Fatalf("drag should be finished")
	}
}

func TestMouseDropOutsideListCancels(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B")
	c := columnsFor(m.cfg.Icons.Handle, "A", m.cfg.Icons.Expand)
	m = send(m,
		tea.MouseMsg{X: c.handle[0], Y: listTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	if got := order(store); got != "A,B" || m.drag != nil {
		t.Fatalf("drop outside the list must cancel, order = %s", got)
	}
}

func TestMouseFilterBarAndActions(t *testing.T) {
	m, store := newTestModel(t, config.Default(), "A", "B")
	labels := m.filterLabels()
	openX := lipgloss.Width(labels[0]) + 2
	m = send(m, click(openX, filterLine)...)
	if store.Filter() != task.FilterOpen {
		t.Fatalf("filter = %s, want open", store.Filter())
	}

	m = send(m, click(0, m.actionLine())...)
	if m.form == nil || m.form.target != nil {
		t.Fatalf("add button should open the create form")
	}
	m = press(m, "esc")

	deleteX := 0
	for _, l := range m.actionLabels()[:actionDelete] {
		deleteX += lipgloss.Width(l) + 1
	}
	m = send(m, click(deleteX, m.actionLine())...)
	if got := order(store); got != "B" {
		t.Fatalf("delete button: order = %s", got)
	}
}

func TestActionButtonFocusesForm(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "A")
	next, cmd := m.Update(tea.MouseMsg{X: 0, Y: m.actionLine(), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.form == nil || m.form.focus != fieldName {
		t.Fatalf("add button should open the form on the name field")
	}
	if cmd == nil {
		t.Fatalf("opening the form by mouse should return the focus command")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "A")
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.list.Width != 80 || m.list.Height != 40-listTop-footerLines {
		t.Fatalf("list size = %dx%d", m.list.Width, m.list.Height)
	}
	m = send(m, tea.WindowSizeMsg{Width: 20, Height: 4})
	if m.list.Height != 3 {
		t.Fatalf("list height should not drop below 3, got %d", m.list.Height)
	}
}

func TestCursorStaysVisible(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = string(rune('a' + i%26))
	}
	m, _ := newTestModel(t, config.Default(), names...)
	for range 25 {
		m = press(m, "j")
	}
	span := m.rowSpans()[m.cursor]
	if span.start < m.list.YOffset || span.start+span.lines > m.list.YOffset+m.list.Height {
		t.Fatalf("cursor row %d not visible at offset %d", m.cursor, m.list.YOffset)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatalf("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestCtrlCQuitsFromEveryMode(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "A", "B")
	form := press(m, "a")
	drag := press(m, "m")
	for name, mm := range map[string]Model{"list": m, "form": form, "drag": drag} {
		_, cmd := mm.Update(keyPress("ctrl+c"))
		if cmd == nil {
			t.Fatalf("%s: ctrl+c returned no command", name)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", name)
		}
	}

	form = typeText(form, "q")
	if form.form == nil || form.form.name.Value() != "q" {
		t.Fatalf("q should be typed into the form, not quit")
	}
}
