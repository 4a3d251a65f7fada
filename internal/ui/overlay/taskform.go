package overlay

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
)

// TaskSubmittedMsg is emitted when the task form is saved
type TaskSubmittedMsg struct {
	TaskID   string // Empty for a new task
	Group    domain.GroupID
	What     string
	Why      string
	Who      string
	Deadline string
	Priority domain.Priority
	Status   domain.Status
}

var (
	priorities = []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}
	statuses   = []domain.Status{domain.StatusNew, domain.StatusInProgress, domain.StatusWaiting, domain.StatusCompleted}
)

const (
	fieldWhat = iota
	fieldWhy
	fieldWho
	fieldDeadline
	fieldPriority
	fieldStatus
	fieldSubmit
)

// TaskForm creates a task or edits an existing one
type TaskForm struct {
	taskID   string
	group    domain.GroupID
	what     textinput.Model
	why      textarea.Model
	who      textinput.Model
	deadline textinput.Model
	priority domain.Priority
	status   domain.Status
	fields   []int
	focus    int // Index into fields
	err      string
	tr       locale.Translator
	styles   *Styles
}

// NewTaskForm opens the form for group. A nil task starts a new one with defaultPriority;
// otherwise the task's values are edited and its status becomes editable too.
func NewTaskForm(tr locale.Translator, group domain.GroupID, task *domain.Task, defaultPriority domain.Priority) *TaskForm {
	what := textinput.New()
	what.CharLimit = 500
	what.Width = 56
	what.Focus()

	why := textarea.New()
	why.CharLimit = 2000
	why.SetWidth(58)
	why.SetHeight(3)
	why.ShowLineNumbers = false

	who := textinput.New()
	who.CharLimit = 100
	who.Width = 56

	deadline := textinput.New()
	deadline.CharLimit = len(domain.DateLayout)
	deadline.Placeholder = domain.DateLayout
	deadline.Width = 12

	f := &TaskForm{
		group:    group,
		what:     what,
		why:      why,
		who:      who,
		deadline: deadline,
		priority: defaultPriority,
		status:   domain.StatusNew,
		fields:   []int{fieldWhat, fieldWhy, fieldWho, fieldDeadline, fieldPriority, fieldSubmit},
		tr:       tr,
		styles:   New(),
	}
	if !f.priority.Valid() {
		f.priority = domain.PriorityMedium
	}

	if task != nil {
		f.taskID = task.ID
		f.what.SetValue(task.What)
		f.why.SetValue(task.Why)
		f.who.SetValue(task.Who)
		f.deadline.SetValue(task.Deadline)
		if task.Priority.Valid() {
			f.priority = task.Priority
		}
		if task.Status.Valid() {
			f.status = task.Status
		}
		f.fields = []int{fieldWhat, fieldWhy, fieldWho, fieldDeadline, fieldPriority, fieldStatus, fieldSubmit}
	}
	return f
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *TaskForm) current() int {
	return f.fields[f.focus]
}

// setFocus moves focus to the field at index i, wrapping around
func (f *TaskForm) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = (i%n + n) % n

	f.what.Blur()
	f.why.Blur()
	f.who.Blur()
	f.deadline.Blur()

	switch f.current() {
	case fieldWhat:
		return f.what.Focus()
	case fieldWhy:
		return f.why.Focus()
	case fieldWho:
		return f.who.Focus()
	case fieldDeadline:
		return f.deadline.Focus()
	}
	return nil
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, closeCmd
		case "ctrl+s":
			return f, f.submit()
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case "enter":
			switch f.current() {
			case fieldSubmit:
				return f, f.submit()
			case fieldWhy:
				// newline inside the textarea
			default:
				return f, f.setFocus(f.focus + 1)
			}
		}

		switch f.current() {
		case fieldPriority:
			f.priority = cycle(priorities, f.priority, keyMsg.String())
			return f, nil
		case fieldStatus:
			f.status = cycle(statuses, f.status, keyMsg.String())
			return f, nil
		case fieldSubmit:
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.current() {
	case fieldWhat:
		f.what, cmd = f.what.Update(msg)
	case fieldWhy:
		f.why, cmd = f.why.Update(msg)
	case fieldWho:
		f.who, cmd = f.who.Update(msg)
	case fieldDeadline:
		f.deadline, cmd = f.deadline.Update(msg)
	}
	return f, cmd
}

// cycle steps through options with left/right or h/l; digits pick directly
func cycle[T comparable](options []T, current T, key string) T {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
		}
	}
	switch key {
	case "left", "h":
		idx = (idx - 1 + len(options)) % len(options)
	case "right", "l", " ":
		idx = (idx + 1) % len(options)
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(options) {
			idx = int(key[0] - '1')
		}
	}
	return options[idx]
}

// submit validates the form and emits TaskSubmittedMsg
func (f *TaskForm) submit() tea.Cmd {
	what := strings.TrimSpace(f.what.Value())
	if what == "" {
		f.err = f.tr.T(locale.KeyRequired)
		f.setFocus(0)
		return nil
	}
	deadline := strings.TrimSpace(f.deadline.Value())
	if deadline != "" {
		if _, err := time.Parse(domain.DateLayout, deadline); err != nil {
			f.err = f.tr.T(locale.KeyInvalidDate)
			return nil
		}
	}
	f.err = ""

	return emit(TaskSubmittedMsg{
		TaskID:   f.taskID,
		Group:    f.group,
		What:     what,
		Why:      strings.TrimSpace(f.why.Value()),
		Who:      strings.TrimSpace(f.who.Value()),
		Deadline: deadline,
		Priority: f.priority,
		Status:   f.status,
	})
}

func (f *TaskForm) label(field int, text string) string {
	if f.current() == field {
		return f.styles.LabelFocused.Render(text)
	}
	return f.styles.Label.Render(text)
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.label(fieldWhat, f.tr.T(locale.KeyWhat)))
	b.WriteString("\n" + f.what.View() + "\n\n")

	b.WriteString(f.label(fieldWhy, f.tr.T(locale.KeyWhy)))
	b.WriteString("\n" + f.why.View() + "\n\n")

	b.WriteString(f.label(fieldWho, f.tr.T(locale.KeyWho)))
	b.WriteString("\n" + f.who.View() + "\n\n")

	b.WriteString(f.label(fieldDeadline, f.tr.T(locale.KeyWhen)))
	b.WriteString("\n" + f.deadline.View() + "\n\n")

	b.WriteString(f.label(fieldPriority, f.tr.T(locale.KeyPriority)))
	b.WriteString("  ")
	b.WriteString(selector(f.styles, priorities, f.priority, f.tr.Priority))
	b.WriteString("\n")

	if f.taskID != "" {
		b.WriteString(f.label(fieldStatus, f.tr.T(locale.KeyStatus)))
		b.WriteString("  ")
		b.WriteString(selector(f.styles, statuses, f.status, f.tr.Status))
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n" + f.styles.Error.Render(f.err) + "\n")
	}

	b.WriteString("\n")
	submit := f.styles.MenuItem
	if f.current() == fieldSubmit {
		submit = f.styles.MenuItemActive
	}
	b.WriteString(submit.Render("[ " + f.tr.T(locale.KeySave) + " ]"))
	b.WriteString("\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " ↕",
		f.styles.MenuKey.Render("←/→") + " ±",
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.tr.T(locale.KeySave),
		f.styles.MenuKey.Render("Esc") + " " + f.tr.T(locale.KeyCancel),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// selector renders options with the current one marked
func selector[T comparable](s *Styles, options []T, current T, label func(T) string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		style := s.MenuItem
		indicator := " "
		if o == current {
			style = s.MenuItemActive
			indicator = "●"
		}
		parts[i] = style.Render(indicator + label(o))
	}
	return strings.Join(parts, "  ")
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.taskID != "" {
		return f.tr.T(locale.KeyEditTask)
	}
	return f.tr.T(locale.KeyNewTask)
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return 66, 26
}
