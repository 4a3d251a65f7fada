// Package undo keeps the short windows during which a deletion or quick completion can be
// reversed. Each pending action owns a real-time timer; Undo cancels it without firing.
package undo

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/store"
)

// ErrNotPending is returned when undoing an action whose window already closed
var ErrNotPending = errors.New("nothing to undo")

// Store is the part of the data store the undo windows drive
type Store interface {
	RemoveTaskFromGroup(taskID string, group domain.GroupID, boardID string) (int, error)
	RestoreTaskToGroup(taskID string, group domain.GroupID, boardID string, position int) error
	FinalDeleteTask(taskID string) error
	QuickCompleteTask(boardID, taskID string) (store.QuickComplete, error)
	UndoQuickComplete(record store.QuickComplete) error
}

// Kind tells which action an entry can reverse
type Kind int

const (
	KindDelete Kind = iota
	KindComplete
)

// String returns the display string
func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "deleted"
	case KindComplete:
		return "completed"
	default:
		return "unknown"
	}
}

// Entry is one pending, reversible action
type Entry struct {
	ID        string
	Kind      Kind
	TaskID    string
	BoardID   string
	Group     domain.GroupID
	Position  int
	Label     string
	ExpiresAt time.Time

	complete store.QuickComplete
	timer    *time.Timer
}

// Manager tracks pending undo windows
type Manager struct {
	mu         sync.Mutex
	store      Store
	window     time.Duration
	maxVisible int
	logger     *slog.Logger
	entries    []*Entry
	closed     bool
}

// NewManager creates a manager whose windows last window. At most maxVisible entries are
// reported by Visible.
func NewManager(s Store, window time.Duration, maxVisible int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	return &Manager{
		store:      s,
		window:     window,
		maxVisible: maxVisible,
		logger:     logger,
	}
}

// Delete takes the task out of its group and deletes it for good once the window closes
func (m *Manager) Delete(boardID string, group domain.GroupID, taskID, label string) (Entry, error) {
	pos, err := m.store.RemoveTaskFromGroup(taskID, group, boardID)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to delete task: %w", err)
	}
	return m.track(&Entry{
		Kind:     KindDelete,
		TaskID:   taskID,
		BoardID:  boardID,
		Group:    group,
		Position: pos,
		Label:    label,
	}), nil
}

// Complete quick-completes the task; the completion becomes permanent once the window closes
func (m *Manager) Complete(boardID, taskID, label string) (Entry, error) {
	record, err := m.store.QuickCompleteTask(boardID, taskID)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to complete task: %w", err)
	}
	return m.track(&Entry{
		Kind:     KindComplete,
		TaskID:   taskID,
		BoardID:  boardID,
		Group:    record.FromGroup,
		Position: record.Position,
		Label:    label,
		complete: record,
	}), nil
}

func (m *Manager) track(e *Entry) Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = domain.NewID()
	e.ExpiresAt = time.Now().Add(m.window)
	if m.closed {
		return *e
	}
	id := e.ID
	e.timer = time.AfterFunc(m.window, func() { m.expire(id) })
	m.entries = append(m.entries, e)
	return *e
}

// expire finalizes an entry whose window closed
func (m *Manager) expire(id string) {
	e := m.take(id)
	if e == nil {
		return
	}
	m.logger.Debug("undo window closed", "task_id", e.TaskID, "kind", e.Kind.String())
	if e.Kind != KindDelete {
		return
	}
	if err := m.store.FinalDeleteTask(e.TaskID); err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
		m.logger.Warn("failed to finalize deletion", "task_id", e.TaskID, "error", err)
	}
}

// take removes and returns the pending entry with id, stopping its timer
func (m *Manager) take(id string) *Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			e.timer.Stop()
			return e
		}
	}
	return nil
}

// Undo reverses the pending action with id
func (m *Manager) Undo(id string) (Entry, error) {
	e := m.take(id)
	if e == nil {
		return Entry{}, ErrNotPending
	}

	var err error
	switch e.Kind {
	case KindDelete:
		err = m.store.RestoreTaskToGroup(e.TaskID, e.Group, e.BoardID, e.Position)
	case KindComplete:
		err = m.store.UndoQuickComplete(e.complete)
	}
	if err != nil {
		return *e, fmt.Errorf("failed to undo: %w", err)
	}
	m.logger.Debug("undone", "task_id", e.TaskID, "kind", e.Kind.String())
	return *e, nil
}

// UndoLatest reverses the most recent pending action
func (m *Manager) UndoLatest() (Entry, error) {
	m.mu.Lock()
	if len(m.entries) == 0 {
		m.mu.Unlock()
		return Entry{}, ErrNotPending
	}
	id := m.entries[len(m.entries)-1].ID
	m.mu.Unlock()
	return m.Undo(id)
}

// Visible returns the newest pending entries, newest first, capped at the visible limit
func (m *Manager) Visible() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.entries)
	if n > m.maxVisible {
		n = m.maxVisible
	}
	visible := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(visible) < n; i-- {
		visible = append(visible, *m.entries[i])
	}
	return visible
}

// Pending returns how many actions can still be undone
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close stops every timer without firing it. Tasks of pending deletions stay in the task map
// without a group until the next orphan sweep removes them.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		e.timer.Stop()
	}
	m.entries = nil
	m.closed = true
}
