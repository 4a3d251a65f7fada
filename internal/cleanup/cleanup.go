// Package cleanup evicts completed tasks past their retention and purges tasks that no group
// references. Both passes mutate in place and are safe to re-run.
package cleanup

import (
	"sort"
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// Report lists what a sweep removed
type Report struct {
	// Expired holds ids of completed tasks evicted by retention
	Expired []string
	// Dangling counts group references to tasks that no longer existed
	Dangling int
	// Orphaned holds ids of tasks no group referenced
	Orphaned []string
}

// Empty reports whether the sweep changed nothing
func (r Report) Empty() bool {
	return len(r.Expired) == 0 && r.Dangling == 0 && len(r.Orphaned) == 0
}

// Add merges other into r
func (r *Report) Add(other Report) {
	r.Expired = append(r.Expired, other.Expired...)
	r.Dangling += other.Dangling
	r.Orphaned = append(r.Orphaned, other.Orphaned...)
}

// CompletedTasks evicts tasks of the board's completed group whose completedAt lies more than
// the group's retention days before now. A task completed exactly retention days ago is kept.
// References to missing tasks are dropped, tasks without a parseable completedAt are kept, and
// the order of surviving ids is preserved.
func CompletedTasks(board *domain.Board, tasks map[string]*domain.Task, now time.Time) Report {
	var report Report
	group := board.Group(domain.GroupCompleted)
	if group == nil {
		return report
	}

	cutoff := domain.StartOfDay(now).AddDate(0, 0, -group.RetentionDays())

	kept := make([]string, 0, len(group.TaskIDs))
	for _, id := range group.TaskIDs {
		task, ok := tasks[id]
		if !ok || task == nil {
			report.Dangling++
			continue
		}
		if task.CompletedAt == "" {
			kept = append(kept, id)
			continue
		}
		completed, ok := domain.ParseDate(task.CompletedAt)
		if ok && completed.Before(cutoff) {
			delete(tasks, id)
			report.Expired = append(report.Expired, id)
			continue
		}
		kept = append(kept, id)
	}
	group.TaskIDs = kept
	return report
}

// OrphanedTasks deletes every task that no group of any board references and returns the
// deleted ids in sorted order. Afterwards the task map's keys equal the referenced ids that exist.
func OrphanedTasks(data *domain.PluginData) []string {
	used := data.ReferencedTaskIDs()
	var orphaned []string
	for id := range data.Tasks {
		if _, ok := used[id]; !ok {
			delete(data.Tasks, id)
			orphaned = append(orphaned, id)
		}
	}
	sort.Strings(orphaned)
	return orphaned
}

// DanglingReferences drops ids of missing tasks from every group of the board, preserving the
// order of the rest, and returns how many were dropped
func DanglingReferences(board *domain.Board, tasks map[string]*domain.Task) int {
	dropped := 0
	for _, id := range domain.GroupIDs {
		group := board.Group(id)
		if group == nil {
			continue
		}
		kept := make([]string, 0, len(group.TaskIDs))
		for _, taskID := range group.TaskIDs {
			if task, ok := tasks[taskID]; !ok || task == nil {
				dropped++
				continue
			}
			kept = append(kept, taskID)
		}
		group.TaskIDs = kept
	}
	return dropped
}

// Sweep runs the retention pass on every board, then drops dangling references from the other
// groups, then runs the orphan pass
func Sweep(data *domain.PluginData, now time.Time) Report {
	var report Report
	for _, board := range data.Boards {
		report.Add(CompletedTasks(board, data.Tasks, now))
		report.Dangling += DanglingReferences(board, data.Tasks)
	}
	report.Orphaned = append(report.Orphaned, OrphanedTasks(data)...)
	return report
}
