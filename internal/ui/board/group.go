package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
)

// minMultiCardWidth is the narrowest card the multi layout will place side by side
const minMultiCardWidth = 28

// renderGroup renders a group box with its header and task cards
func renderGroup(g Group, cursorTask int, isActive bool, view View, width int, s *styles.Styles) string {
	header := renderHeader(g, isActive, s)

	// Border (2) and padding (2)
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	body := header
	if !g.Collapsed {
		body = lipgloss.JoinVertical(lipgloss.Left, header, renderCards(g.Tasks, cursorTask, isActive, inner, view, s))
	}

	boxStyle := s.Group
	if isActive {
		boxStyle = s.GroupActive
	}
	return boxStyle.Width(width - 2).Render(body)
}

// renderHeader renders "▾ Title 3/5"
func renderHeader(g Group, isActive bool, s *styles.Styles) string {
	arrow := "▾"
	if g.Collapsed {
		arrow = "▸"
	}
	title := s.GroupAccent(g.ID, isActive).Render(arrow + " " + g.Title)

	count := fmt.Sprintf("%d", len(g.Tasks))
	countStyle := s.GroupCount
	if g.WipLimit != nil {
		count = fmt.Sprintf("%d/%d", len(g.Tasks), *g.WipLimit)
		if g.OverWip() {
			countStyle = s.GroupOverWip
		}
	}
	return title + " " + countStyle.Render(count)
}

func renderCards(tasks []domain.Task, cursorTask int, isActive bool, width int, view View, s *styles.Styles) string {
	if len(tasks) == 0 {
		return s.GroupEmpty.Render(view.EmptyText)
	}

	perRow := 1
	if view.CardView != domain.CardViewCompact && view.CardLayout == domain.CardLayoutMulti && width >= 2*minMultiCardWidth {
		perRow = 2
	}
	cardWidth := width / perRow

	var rows []string
	for i := 0; i < len(tasks); i += perRow {
		var cards []string
		for j := i; j < i+perRow && j < len(tasks); j++ {
			cards = append(cards, renderCard(tasks[j], isActive && j == cursorTask, cardWidth, view, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}
