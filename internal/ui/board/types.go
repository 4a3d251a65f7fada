package board

import (
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// Group represents a board group with its resolved tasks
type Group struct {
	ID        domain.GroupID
	Title     string
	Tasks     []domain.Task
	Collapsed bool
	WipLimit  *int
	FullWidth bool
}

// OverWip reports whether the group holds more tasks than its limit
func (g Group) OverWip() bool {
	return g.WipLimit != nil && len(g.Tasks) > *g.WipLimit
}

// Cursor represents the current cursor position
type Cursor struct {
	Group int // Index into the visible groups
	Task  int // Task index within group
}

// View holds the display preferences shared by every group
type View struct {
	CardView   domain.CardView
	CardLayout domain.CardLayout
	EmptyText  string
	Now        time.Time
}

// BuildGroups resolves the visible groups of b in display order. Ids with no task behind them
// are skipped; label names each group.
func BuildGroups(b *domain.Board, tasks map[string]*domain.Task, label func(domain.GroupID) string) []Group {
	if b == nil {
		return nil
	}
	var groups []Group
	for _, id := range b.VisibleGroups() {
		g := b.Group(id)
		if g == nil {
			continue
		}
		group := Group{
			ID:        id,
			Title:     label(id),
			Collapsed: g.Collapsed,
			WipLimit:  g.WipLimit,
			FullWidth: g.FullWidth,
		}
		for _, taskID := range g.TaskIDs {
			if t, ok := tasks[taskID]; ok && t != nil {
				group.Tasks = append(group.Tasks, *t)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
