package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
)

// Render renders the groups of a board row by row. It returns the rendered board and the line
// at which the cursor's group starts, so callers can scroll it into view.
func Render(groups []Group, cursor Cursor, view View, s *styles.Styles, width int) (string, int) {
	if len(groups) == 0 {
		return "", 0
	}

	var (
		rows       []string
		lines      int
		cursorLine int
	)
	for _, row := range ComputeLayout(groups) {
		var rendered string
		switch row.Width {
		case WidthFull:
			rendered = renderOne(groups, row.Groups[0], cursor, view, s, width)
		case WidthHalf:
			left := width / 2
			rendered = lipgloss.JoinHorizontal(lipgloss.Top,
				renderOne(groups, row.Groups[0], cursor, view, s, left),
				renderOne(groups, row.Groups[1], cursor, view, s, width-left),
			)
		case WidthHalfAlone:
			rendered = renderOne(groups, row.Groups[0], cursor, view, s, width/2)
		}

		for _, idx := range row.Groups {
			if idx == cursor.Group {
				cursorLine = lines
			}
		}
		lines += lipgloss.Height(rendered)
		rows = append(rows, rendered)
	}

	return strings.Join(rows, "\n"), cursorLine
}

func renderOne(groups []Group, idx int, cursor Cursor, view View, s *styles.Styles, width int) string {
	isActive := idx == cursor.Group
	cursorTask := 0
	if isActive {
		cursorTask = cursor.Task
	}
	return renderGroup(groups[idx], cursorTask, isActive, view, width, s)
}

// Header holds the board-level text shown above the groups
type Header struct {
	Title          string
	Subtitle       string
	Tabs           []string // Titles of every board
	ActiveTab      int
	Notes          string
	NotesLabel     string
	NotesCollapsed bool
	NotesHidden    bool
}

// RenderHeader renders board tabs, title, subtitle and notes
func RenderHeader(h Header, s *styles.Styles, width int) string {
	var parts []string

	if len(h.Tabs) > 1 {
		tabs := make([]string, len(h.Tabs))
		for i, t := range h.Tabs {
			if i == h.ActiveTab {
				tabs[i] = s.BoardTab.Render("[" + t + "]")
			} else {
				tabs[i] = s.BoardTabs.Render(" " + t + " ")
			}
		}
		parts = append(parts, truncate(strings.Join(tabs, " "), width))
	}

	parts = append(parts, s.BoardTitle.Render(truncate(h.Title, width)))
	if h.Subtitle != "" {
		parts = append(parts, s.BoardSubtitle.Render(truncate(h.Subtitle, width)))
	}

	if !h.NotesHidden {
		if h.NotesCollapsed {
			parts = append(parts, s.BoardTabs.Render("▸ "+h.NotesLabel))
		} else {
			notes := h.Notes
			if notes == "" {
				notes = " "
			}
			parts = append(parts, s.BoardTabs.Render("▾ "+h.NotesLabel), s.Notes.Width(width-2).Render(notes))
		}
	}

	return strings.Join(parts, "\n")
}
