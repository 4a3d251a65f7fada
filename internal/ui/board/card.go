package board

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, width int, view View, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}

	// Border (2) and padding (2)
	inner := width - 4
	if inner < 4 {
		inner = 4
	}

	cursor := ""
	if isCursor {
		cursor = "▶ "
	}

	if view.CardView == domain.CardViewCompact {
		return renderCompact(task, cursor, inner, view.Now, s)
	}

	badge := s.PriorityBadge(task.Priority).Render(task.Priority.Short())
	title := s.TaskTitle.Render(truncate(cursor+task.What, inner-lipgloss.Width(badge)-1))
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Left, badge, " ", title)}

	if task.Why != "" {
		lines = append(lines, s.TaskDetail.Render(truncate(task.Why, inner)))
	}

	var meta []string
	if task.Who != "" {
		meta = append(meta, "@"+task.Who)
	}
	if d := deadline(task, view.Now, s); d != "" {
		meta = append(meta, d)
	}
	meta = append(meta, s.StatusBadge(task.Status).Render(task.Status.String()))
	lines = append(lines, truncate(strings.Join(meta, " · "), inner))

	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderCompact renders a task as a single unbordered line
func renderCompact(task domain.Task, cursor string, width int, now time.Time, s *styles.Styles) string {
	prefix := "  "
	if cursor != "" {
		prefix = cursor
	}
	badge := s.PriorityBadge(task.Priority).Render(task.Priority.Short())
	line := prefix + badge + " "

	d := deadline(task, now, s)
	room := width - lipgloss.Width(line)
	if d != "" {
		room -= lipgloss.Width(d) + 1
	}
	line += s.TaskTitle.Render(truncate(task.What, room))
	if d != "" {
		line += " " + d
	}
	return line
}

// deadline renders the task deadline, highlighted when overdue
func deadline(task domain.Task, now time.Time, s *styles.Styles) string {
	if task.Deadline == "" {
		return ""
	}
	short := domain.FormatDeadlineShort(task.Deadline, now)
	if task.IsOverdue(now) {
		return s.Overdue.Render("⚠ " + short)
	}
	return s.Deadline.Render(short)
}

func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	return ansi.Truncate(s, width, "…")
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, view View, s *styles.Styles) string {
	return renderCard(task, isCursor, width, view, s)
}
