package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
	"github.com/riordanpawley/taskmaster/internal/ui/overlay"
)

// handleSearch moves the cursor to the first task matching the finder's query. Cancelling
// returns the cursor to where it was when the finder opened.
func (m Model) handleSearch(msg overlay.SearchMsg) (tea.Model, tea.Cmd) {
	groups := m.groups()
	if msg.Cancelled {
		if m.searchOrigin != "" {
			m.nav.JumpToTaskByID(groups, m.searchOrigin)
		}
		return m, nil
	}

	matches := matchTasks(groups, msg.Query)
	if s, ok := m.overlayStack.Finder(); ok {
		s.SetMatchCount(len(matches))
	}
	if len(matches) > 0 {
		m.nav.JumpToTaskByID(groups, matches[0])
	}
	return m, nil
}

// matchTasks returns the ids of tasks in expanded groups whose what, why or who contains
// query, ignoring case, in display order
func matchTasks(groups []board.Group, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var ids []string
	for _, g := range groups {
		if g.Collapsed {
			continue
		}
		for _, t := range g.Tasks {
			text := strings.ToLower(t.What + "\n" + t.Why + "\n" + t.Who)
			if strings.Contains(text, query) {
				ids = append(ids, t.ID)
			}
		}
	}
	return ids
}
