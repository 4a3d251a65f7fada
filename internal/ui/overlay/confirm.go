package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	yes      string
	no       string
	payload  any
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult represents the result of a confirmation dialog
type ConfirmResult struct {
	Confirmed bool
	// Payload is handed back untouched so the caller knows what was confirmed
	Payload any
}

// NewConfirmDialog creates a new confirmation dialog. yes and no label the two buttons.
func NewConfirmDialog(title, message, yes, no string, payload any) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		yes:     yes,
		no:      no,
		payload: payload,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) result(confirmed bool) tea.Cmd {
	key := "no"
	if confirmed {
		key = "yes"
	}
	return emit(SelectionMsg{
		Key:   key,
		Value: ConfirmResult{Confirmed: confirmed, Payload: c.payload},
	})
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.result(true)
	case "n", "N", "esc":
		return c, c.result(false)
	case "enter":
		return c, c.result(c.selected)
	case "left", "h":
		c.selected = false
	case "right", "l", "tab":
		c.selected = true
	}
	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] " + c.yes))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] " + c.no))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("← → / Tab • Enter • Esc"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 60, strings.Count(c.message, "\n") + 7
}
