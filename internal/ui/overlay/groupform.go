package overlay

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
)

// GroupSubmittedMsg is emitted when the group settings form is saved
type GroupSubmittedMsg struct {
	BoardID       string
	Group         domain.GroupID
	WipLimit      *int // Nil means no limit
	RetentionDays *int // Nil means the default retention
	Hidden        bool
	FullWidth     bool
}

const (
	groupFieldWip = iota
	groupFieldRetention
	groupFieldHidden
	groupFieldFullWidth
)

// GroupForm edits the settings of one group
type GroupForm struct {
	boardID   string
	group     domain.GroupID
	label     string
	wip       textinput.Model
	retention textinput.Model
	hidden    bool
	fullWidth bool
	fields    []int
	focus     int
	err       string
	tr        locale.Translator
	styles    *Styles
}

// NewGroupForm opens the settings of group on board. Retention is only offered for the
// completed group.
func NewGroupForm(tr locale.Translator, board *domain.Board, group domain.GroupID) *GroupForm {
	g := board.Group(group)

	wip := textinput.New()
	wip.CharLimit = 4
	wip.Width = 8
	wip.Placeholder = tr.T(locale.KeyNoLimit)
	wip.Focus()

	retention := textinput.New()
	retention.CharLimit = 4
	retention.Width = 8
	retention.Placeholder = strconv.Itoa(domain.DefaultRetentionDays)

	f := &GroupForm{
		boardID:   board.ID,
		group:     group,
		label:     tr.Group(group),
		wip:       wip,
		retention: retention,
		hidden:    board.IsHidden(group),
		fields:    []int{groupFieldWip, groupFieldHidden, groupFieldFullWidth},
		tr:        tr,
		styles:    New(),
	}
	if group == domain.GroupCompleted {
		f.fields = []int{groupFieldWip, groupFieldRetention, groupFieldHidden, groupFieldFullWidth}
	}
	if g != nil {
		f.fullWidth = g.FullWidth
		if g.WipLimit != nil {
			f.wip.SetValue(strconv.Itoa(*g.WipLimit))
		}
		if g.CompletedRetentionDays != nil {
			f.retention.SetValue(strconv.Itoa(*g.CompletedRetentionDays))
		}
	}
	return f
}

// Init initializes the overlay
func (f *GroupForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *GroupForm) current() int {
	return f.fields[f.focus]
}

func (f *GroupForm) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = (i%n + n) % n
	f.wip.Blur()
	f.retention.Blur()
	switch f.current() {
	case groupFieldWip:
		return f.wip.Focus()
	case groupFieldRetention:
		return f.retention.Focus()
	}
	return nil
}

// Update handles messages
func (f *GroupForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, closeCmd
		case "enter", "ctrl+s":
			return f, f.submit()
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case " ", "x":
			switch f.current() {
			case groupFieldHidden:
				f.hidden = !f.hidden
				return f, nil
			case groupFieldFullWidth:
				f.fullWidth = !f.fullWidth
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.current() {
	case groupFieldWip:
		f.wip, cmd = f.wip.Update(msg)
	case groupFieldRetention:
		f.retention, cmd = f.retention.Update(msg)
	}
	return f, cmd
}

// parseOptional reads a non-negative whole number; empty input is nil
func parseOptional(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, false
	}
	return &n, true
}

func (f *GroupForm) submit() tea.Cmd {
	wip, ok := parseOptional(f.wip.Value())
	if !ok {
		f.err = f.tr.T(locale.KeyInvalidNumber)
		return nil
	}
	retention, ok := parseOptional(f.retention.Value())
	if !ok {
		f.err = f.tr.T(locale.KeyInvalidNumber)
		return nil
	}
	f.err = ""

	return emit(GroupSubmittedMsg{
		BoardID:       f.boardID,
		Group:         f.group,
		WipLimit:      wip,
		RetentionDays: retention,
		Hidden:        f.hidden,
		FullWidth:     f.fullWidth,
	})
}

func (f *GroupForm) fieldLabel(field int, text string) string {
	if f.current() == field {
		return f.styles.LabelFocused.Render(text)
	}
	return f.styles.Label.Render(text)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// View renders the form
func (f *GroupForm) View() string {
	var b strings.Builder

	b.WriteString(f.fieldLabel(groupFieldWip, f.tr.T(locale.KeyWipLimit)))
	b.WriteString("  " + f.wip.View() + "\n")

	if f.group == domain.GroupCompleted {
		b.WriteString(f.fieldLabel(groupFieldRetention, f.tr.T(locale.KeyRetention)))
		b.WriteString("  " + f.retention.View() + "\n")
	}

	b.WriteString(f.fieldLabel(groupFieldHidden, checkbox(f.hidden)+" "+f.tr.T(locale.KeyHidden)) + "\n")
	b.WriteString(f.fieldLabel(groupFieldFullWidth, checkbox(f.fullWidth)+" "+f.tr.T(locale.KeyFullWidth)) + "\n")

	if f.err != "" {
		b.WriteString("\n" + f.styles.Error.Render(f.err) + "\n")
	}

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " ↕",
		f.styles.MenuKey.Render("Space") + " ✓",
		f.styles.MenuKey.Render("Enter") + " " + f.tr.T(locale.KeySave),
		f.styles.MenuKey.Render("Esc") + " " + f.tr.T(locale.KeyCancel),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))
	return b.String()
}

// Title returns the overlay title
func (f *GroupForm) Title() string {
	return f.tr.T(locale.KeyGroupSettings) + ": " + f.label
}

// Size returns the overlay dimensions
func (f *GroupForm) Size() (width, height int) {
	return 50, 12
}
