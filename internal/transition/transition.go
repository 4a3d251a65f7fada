// Package transition derives a task's status from a move between groups.
package transition

import (
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// Apply updates task in place for a move from one group to another. Rules are checked in
// order and the first match wins:
//
//  1. into completed: status completed, completedAt stamped with today
//  2. into backlog: nothing changes, whatever the source
//  3. out of backlog while new: status inProgress
//  4. out of completed: status inProgress, completedAt cleared
//  5. anything else: nothing changes
func Apply(task *domain.Task, from, to domain.GroupID, now time.Time) {
	switch {
	case to == domain.GroupCompleted:
		task.Status = domain.StatusCompleted
		task.CompletedAt = domain.FormatDate(now)
	case to == domain.GroupBacklog:
		// backlog is inert storage
	case from == domain.GroupBacklog && task.Status == domain.StatusNew:
		task.Status = domain.StatusInProgress
	case from == domain.GroupCompleted:
		task.Status = domain.StatusInProgress
		task.CompletedAt = ""
	}
}
