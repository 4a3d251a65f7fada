package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single board item. Tasks live only in PluginData.Tasks; groups refer to them by id.
type Task struct {
	ID          string   `json:"id"`
	What        string   `json:"what"`
	Why         string   `json:"why"`
	Who         string   `json:"who"`
	Deadline    string   `json:"deadline"`
	CreatedAt   string   `json:"createdAt"`
	CompletedAt string   `json:"completedAt"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// NewID returns a fresh, never reused identity for tasks and boards
func NewID() string {
	return uuid.NewString()
}

// NewTask builds a task in the "new" state created on the given day
func NewTask(what string, priority Priority, now time.Time) *Task {
	if !priority.Valid() {
		priority = DefaultSettings().DefaultPriority
	}
	return &Task{
		ID:        NewID(),
		What:      what,
		CreatedAt: FormatDate(now),
		Priority:  priority,
		Status:    StatusNew,
	}
}

// IsCompleted reports whether the task carries the completed status
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether an open task has a deadline before today
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Deadline == "" || t.IsCompleted() {
		return false
	}
	deadline, ok := ParseDate(t.Deadline)
	if !ok {
		return false
	}
	return deadline.Before(StartOfDay(now))
}

// Clone returns an independent copy of the task
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// SetStatus changes the status directly, keeping completedAt consistent with it
func (t *Task) SetStatus(status Status, now time.Time) {
	if status == t.Status {
		return
	}
	t.Status = status
	if status == StatusCompleted {
		t.CompletedAt = FormatDate(now)
	} else {
		t.CompletedAt = ""
	}
}
