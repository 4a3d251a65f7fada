package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
)

// BoardSubmittedMsg is emitted when the board form is saved
type BoardSubmittedMsg struct {
	BoardID  string // Empty for a new board
	Title    string
	Subtitle string
	Notes    string
}

const (
	boardFieldTitle = iota
	boardFieldSubtitle
	boardFieldNotes
	boardFieldCount
)

// BoardForm creates a board or edits its title, subtitle and notes
type BoardForm struct {
	boardID  string
	title    textinput.Model
	subtitle textinput.Model
	notes    textarea.Model
	focus    int
	tr       locale.Translator
	styles   *Styles
}

// NewBoardForm opens the form. A nil board creates a new one.
func NewBoardForm(tr locale.Translator, board *domain.Board) *BoardForm {
	title := textinput.New()
	title.CharLimit = 200
	title.Width = 56
	title.Focus()

	subtitle := textinput.New()
	subtitle.CharLimit = 500
	subtitle.Width = 56

	notes := textarea.New()
	notes.SetWidth(58)
	notes.SetHeight(6)
	notes.ShowLineNumbers = false

	f := &BoardForm{
		title:    title,
		subtitle: subtitle,
		notes:    notes,
		tr:       tr,
		styles:   New(),
	}
	if board != nil {
		f.boardID = board.ID
		f.title.SetValue(board.Title)
		f.subtitle.SetValue(board.Subtitle)
		f.notes.SetValue(board.Notes)
	} else {
		f.title.Placeholder = domain.NewBoardTitle
	}
	return f
}

// Init initializes the overlay
func (f *BoardForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *BoardForm) setFocus(i int) tea.Cmd {
	f.focus = (i%boardFieldCount + boardFieldCount) % boardFieldCount
	f.title.Blur()
	f.subtitle.Blur()
	f.notes.Blur()
	switch f.focus {
	case boardFieldTitle:
		return f.title.Focus()
	case boardFieldSubtitle:
		return f.subtitle.Focus()
	default:
		return f.notes.Focus()
	}
}

// Update handles messages
func (f *BoardForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, closeCmd
		case "ctrl+s":
			return f, f.submit()
		case "tab":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab":
			return f, f.setFocus(f.focus - 1)
		case "enter":
			if f.focus != boardFieldNotes {
				return f, f.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case boardFieldTitle:
		f.title, cmd = f.title.Update(msg)
	case boardFieldSubtitle:
		f.subtitle, cmd = f.subtitle.Update(msg)
	case boardFieldNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return f, cmd
}

// submit emits BoardSubmittedMsg. An empty title falls back to the default board title.
func (f *BoardForm) submit() tea.Cmd {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		title = domain.NewBoardTitle
	}
	return emit(BoardSubmittedMsg{
		BoardID:  f.boardID,
		Title:    title,
		Subtitle: strings.TrimSpace(f.subtitle.Value()),
		Notes:    f.notes.Value(),
	})
}

func (f *BoardForm) label(field int, text string) string {
	if f.focus == field {
		return f.styles.LabelFocused.Render(text)
	}
	return f.styles.Label.Render(text)
}

// View renders the form
func (f *BoardForm) View() string {
	var b strings.Builder

	b.WriteString(f.label(boardFieldTitle, f.tr.T(locale.KeyBoardTitle)))
	b.WriteString("\n" + f.title.View() + "\n\n")
	b.WriteString(f.label(boardFieldSubtitle, f.tr.T(locale.KeyBoardSubtitle)))
	b.WriteString("\n" + f.subtitle.View() + "\n\n")
	b.WriteString(f.label(boardFieldNotes, f.tr.T(locale.KeyNotes)))
	b.WriteString("\n" + f.notes.View() + "\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " ↕",
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.tr.T(locale.KeySave),
		f.styles.MenuKey.Render("Esc") + " " + f.tr.T(locale.KeyCancel),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))
	return b.String()
}

// Title returns the overlay title
func (f *BoardForm) Title() string {
	if f.boardID != "" {
		return f.tr.T(locale.KeyBoardSettings)
	}
	return f.tr.T(locale.KeyNewBoard)
}

// Size returns the overlay dimensions
func (f *BoardForm) Size() (width, height int) {
	return 66, 20
}
