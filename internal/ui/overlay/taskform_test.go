package overlay

import (
	"testing"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enTr = locale.NewTranslator(domain.LanguageEN)

func press(t *testing.T, f *TaskForm, keys ...string) *TaskForm {
	t.Helper()
	for _, k := range keys {
		m, _ := f.Update(key(k))
		f = m.(*TaskForm)
	}
	return f
}

func TestNewTaskForm_New(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityHigh)

	assert.Equal(t, "New Task", f.Title())
	assert.Equal(t, domain.PriorityHigh, f.priority)
	assert.Equal(t, fieldWhat, f.current())
	assert.NotContains(t, f.fields, fieldStatus)

	w, h := f.Size()
	assert.Equal(t, 66, w)
	assert.Equal(t, 26, h)
}

func TestNewTaskForm_InvalidDefaultPriority(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.Priority("urgent"))
	assert.Equal(t, domain.PriorityMedium, f.priority)
}

func TestNewTaskForm_Edit(t *testing.T) {
	task := &domain.Task{
		ID: "t1", What: "Call bank", Why: "Card", Who: "me",
		Deadline: "2026-02-01", Priority: domain.PriorityLow, Status: domain.StatusWaiting,
	}

	f := NewTaskForm(enTr, domain.GroupDelegated, task, domain.PriorityHigh)

	assert.Equal(t, "Edit Task", f.Title())
	assert.Equal(t, "Call bank", f.what.Value())
	assert.Equal(t, "Card", f.why.Value())
	assert.Equal(t, "me", f.who.Value())
	assert.Equal(t, "2026-02-01", f.deadline.Value())
	assert.Equal(t, domain.PriorityLow, f.priority)
	assert.Equal(t, domain.StatusWaiting, f.status)
	assert.Contains(t, f.fields, fieldStatus)
}

func TestTaskForm_SubmitNew(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityMedium)

	f = typeText(f, "  Write report ").(*TaskForm)
	f = press(t, f, "enter") // to why
	f = typeText(f, "Quarterly").(*TaskForm)
	f = press(t, f, "tab")
	f = typeText(f, "anna").(*TaskForm)
	f = press(t, f, "tab")
	f = typeText(f, "2026-05-01").(*TaskForm)
	f = press(t, f, "tab", "right") // priority medium -> high

	_, cmd := f.Update(key("ctrl+s"))
	msgs := collect(t, cmd)

	got := findMsg[TaskSubmittedMsg](t, msgs)
	assert.Equal(t, TaskSubmittedMsg{
		Group:    domain.GroupFocus,
		What:     "Write report",
		Why:      "Quarterly",
		Who:      "anna",
		Deadline: "2026-05-01",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusNew,
	}, got)
	assert.True(t, hasClose(msgs))
}

func TestTaskForm_SubmitEditKeepsID(t *testing.T) {
	task := &domain.Task{ID: "t1", What: "Old", Priority: domain.PriorityLow, Status: domain.StatusNew}
	f := NewTaskForm(enTr, domain.GroupBacklog, task, domain.PriorityMedium)

	// what, why, who, deadline, priority, status
	f = press(t, f, "tab", "tab", "tab", "tab", "tab", "4")
	assert.Equal(t, domain.StatusCompleted, f.status)

	f = press(t, f, "tab")
	assert.Equal(t, fieldSubmit, f.current())

	_, cmd := f.Update(key("enter"))
	got := findMsg[TaskSubmittedMsg](t, collect(t, cmd))
	assert.Equal(t, "t1", got.TaskID)
	assert.Equal(t, "Old", got.What)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestTaskForm_RequiresWhat(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityMedium)
	f = press(t, f, "tab")

	_, cmd := f.Update(key("ctrl+s"))

	assert.Nil(t, cmd)
	assert.Equal(t, "This field is required", f.err)
	assert.Equal(t, fieldWhat, f.current())
	assert.Contains(t, f.View(), "This field is required")
}

func TestTaskForm_RejectsBadDeadline(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityMedium)
	f = typeText(f, "Task").(*TaskForm)
	f = press(t, f, "tab", "tab", "tab")
	f = typeText(f, "tomorrow").(*TaskForm)

	_, cmd := f.Update(key("ctrl+s"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Use the YYYY-MM-DD format", f.err)
}

func TestTaskForm_EscapeCloses(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityMedium)

	_, cmd := f.Update(key("esc"))

	assert.True(t, hasClose(collect(t, cmd)))
}

func TestTaskForm_FocusWraps(t *testing.T) {
	f := NewTaskForm(enTr, domain.GroupFocus, nil, domain.PriorityMedium)

	f = press(t, f, "shift+tab")
	assert.Equal(t, fieldSubmit, f.current())

	f = press(t, f, "tab")
	assert.Equal(t, fieldWhat, f.current())
}

func TestCycle(t *testing.T) {
	assert.Equal(t, domain.PriorityHigh, cycle(priorities, domain.PriorityLow, "left"))
	assert.Equal(t, domain.PriorityMedium, cycle(priorities, domain.PriorityLow, "l"))
	assert.Equal(t, domain.PriorityLow, cycle(priorities, domain.PriorityHigh, "right"))
	assert.Equal(t, domain.PriorityMedium, cycle(priorities, domain.PriorityLow, "2"))
	assert.Equal(t, domain.PriorityLow, cycle(priorities, domain.PriorityLow, "9"))
	assert.Equal(t, domain.PriorityLow, cycle(priorities, domain.PriorityLow, "x"))
}

func TestTaskForm_ViewLocalized(t *testing.T) {
	ru := locale.NewTranslator(domain.LanguageRU)
	f := NewTaskForm(ru, domain.GroupFocus, nil, domain.PriorityMedium)

	view := f.View()

	require.Equal(t, "Новая задача", f.Title())
	assert.Contains(t, view, "Что нужно сделать")
	assert.Contains(t, view, "Средний")
	assert.NotContains(t, view, "Статус")
}
