package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	title      string
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(title string) *HelpOverlay {
	return &HelpOverlay{
		title:      title,
		styles:     New(),
		scroll:     0,
		viewHeight: 20, // Default height, will be updated based on Size()
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, closeCmd

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			// Jump to top
			h.scroll = 0
			return h, nil

		case "G":
			// Jump to bottom
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	categories := h.getCategories()

	// Build full content
	var content strings.Builder
	for i, cat := range categories {
		if i > 0 {
			content.WriteString("\n")
		}

		// Category header
		content.WriteString(h.styles.LabelFocused.Render(cat.Name + ":"))
		content.WriteString("\n")

		// Bindings in this category
		for _, binding := range cat.Bindings {
			keyStyle := h.styles.MenuKey
			descStyle := h.styles.MenuItem

			line := "  " + keyStyle.Render(binding.Key) + "  " + descStyle.Render(binding.Description)
			content.WriteString(line)
			content.WriteString("\n")
		}
	}

	// Calculate scroll limits
	lines := strings.Split(content.String(), "\n")
	totalLines := len(lines)
	h.maxScroll = max(0, totalLines-h.viewHeight)

	// Apply scroll offset
	start := h.scroll
	end := min(h.scroll+h.viewHeight, totalLines)

	visibleLines := lines[start:end]
	result := strings.Join(visibleLines, "\n")

	// Add scroll indicator if needed
	if h.maxScroll > 0 {
		scrollInfo := h.styles.Footer.Render(
			"[" + h.styles.MenuKey.Render("j/k") + " to scroll, " + h.styles.MenuKey.Render("g/G") + " to jump]",
		)
		result += "\n\n" + scrollInfo
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return h.title
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	h.viewHeight = 20 // Content viewing area
	return 56, 24     // Total overlay size including padding and borders
}

// getCategories returns all keybinding categories
func (h *HelpOverlay) getCategories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Previous/next group"},
				{Key: "j/k", Description: "Move up/down in group"},
				{Key: "g/G", Description: "First/last task of group"},
				{Key: "Ctrl+D/U", Description: "Half page down/up"},
				{Key: "Tab", Description: "Next board"},
				{Key: "Shift+Tab", Description: "Previous board"},
				{Key: "/", Description: "Find task"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "n", Description: "New task in current group"},
				{Key: "e/Enter", Description: "Edit task"},
				{Key: "m", Description: "Grab task and move it"},
				{Key: "</>", Description: "Move task to previous/next group"},
				{Key: "J/K", Description: "Move task down/up"},
				{Key: "c", Description: "Complete task"},
				{Key: "d", Description: "Delete task"},
				{Key: "u", Description: "Undo last delete or complete"},
			},
		},
		{
			Name: "Groups",
			Bindings: []KeyBinding{
				{Key: "Space", Description: "Collapse/expand group"},
				{Key: "s", Description: "Group settings"},
			},
		},
		{
			Name: "Boards",
			Bindings: []KeyBinding{
				{Key: "B", Description: "Create board"},
				{Key: "E", Description: "Edit board and notes"},
				{Key: "D", Description: "Delete board"},
				{Key: "N", Description: "Collapse/expand notes"},
				{Key: "H", Description: "Show/hide notes"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "S", Description: "Settings"},
				{Key: "X", Description: "Remove expired completed tasks"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
