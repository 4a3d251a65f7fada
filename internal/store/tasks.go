package store

import (
	"fmt"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/transition"
)

// QuickComplete records the state a quick completion replaced, so that it can be reversed
type QuickComplete struct {
	TaskID          string
	BoardID         string
	FromGroup       domain.GroupID
	Position        int
	PrevStatus      domain.Status
	PrevCompletedAt string
}

// NewTask returns an unsaved task created today with the default priority from settings
func (s *Store) NewTask(what string) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewTask(what, s.data.Settings.DefaultPriority, s.now())
}

// AddTask stores task and appends its id to the group of the active board
func (s *Store) AddTask(task *domain.Task, group domain.GroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, g, err := s.group(s.activeBoardID, group)
	if err != nil {
		return err
	}
	if task.ID == "" {
		task.ID = domain.NewID()
	}
	if _, exists := s.data.Tasks[task.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrTaskExists, task.ID)
	}

	s.data.Tasks[task.ID] = task.Clone()
	g.TaskIDs = append(g.TaskIDs, task.ID)
	s.logger.Debug("task added", "task_id", task.ID, "board_id", s.activeBoardID, "group", group)
	s.persistLocked()
	return nil
}

// UpdateTask replaces the stored task that has task's id
func (s *Store) UpdateTask(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Tasks[task.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, task.ID)
	}
	s.data.Tasks[task.ID] = task.Clone()
	s.persistLocked()
	return nil
}

// MoveTask moves a task of the active board from one group to newIndex of another and applies
// the status transition for that move. Indexes past either end land at that end.
func (s *Store) MoveTask(taskID string, from, to domain.GroupID, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, src, err := s.group(s.activeBoardID, from)
	if err != nil {
		return err
	}
	_, dst, err := s.group(s.activeBoardID, to)
	if err != nil {
		return err
	}
	if _, ok := src.Remove(taskID); !ok {
		return fmt.Errorf("%w: %s in %s", domain.ErrTaskNotFound, taskID, from)
	}
	dst.Insert(taskID, newIndex)

	if task, ok := s.data.Tasks[taskID]; ok {
		transition.Apply(task, from, to, s.now())
	}
	s.logger.Debug("task moved", "task_id", taskID, "from", from, "to", to, "index", newIndex)
	s.persistLocked()
	return nil
}

// RemoveTaskFromGroup takes a task id out of a group, keeping the task itself, and returns
// the position it held
func (s *Store) RemoveTaskFromGroup(taskID string, group domain.GroupID, boardID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, g, err := s.group(boardID, group)
	if err != nil {
		return -1, err
	}
	pos, ok := g.Remove(taskID)
	if !ok {
		return -1, fmt.Errorf("%w: %s in %s", domain.ErrTaskNotFound, taskID, group)
	}
	s.persistLocked()
	return pos, nil
}

// RestoreTaskToGroup puts a task id back at position, reversing RemoveTaskFromGroup. A task
// purged since the removal cannot be restored.
func (s *Store) RestoreTaskToGroup(taskID string, group domain.GroupID, boardID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, g, err := s.group(boardID, group)
	if err != nil {
		return err
	}
	if _, ok := s.data.Tasks[taskID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	if g.IndexOf(taskID) >= 0 {
		return nil
	}
	g.Insert(taskID, position)
	s.persistLocked()
	return nil
}

// QuickCompleteTask moves a task of the board to the head of its completed group
func (s *Store) QuickCompleteTask(boardID, taskID string) (QuickComplete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.board(boardID)
	if err != nil {
		return QuickComplete{}, err
	}
	task, ok := s.data.Tasks[taskID]
	if !ok {
		return QuickComplete{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	from, pos, ok := b.FindTask(taskID)
	if !ok {
		return QuickComplete{}, fmt.Errorf("%w: %s on board %s", domain.ErrTaskNotFound, taskID, boardID)
	}

	record := QuickComplete{
		TaskID:          taskID,
		BoardID:         boardID,
		FromGroup:       from,
		Position:        pos,
		PrevStatus:      task.Status,
		PrevCompletedAt: task.CompletedAt,
	}

	b.Group(from).Remove(taskID)
	b.Group(domain.GroupCompleted).Insert(taskID, 0)
	transition.Apply(task, from, domain.GroupCompleted, s.now())

	s.logger.Debug("task completed", "task_id", taskID, "board_id", boardID, "from", from)
	s.persistLocked()
	return record, nil
}

// UndoQuickComplete returns a quick-completed task to its previous group, position, status and
// completion date. It fails with ErrTaskMoved once the task has left the completed group.
func (s *Store) UndoQuickComplete(record QuickComplete) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, g, err := s.group(record.BoardID, record.FromGroup)
	if err != nil {
		return err
	}
	task, ok := s.data.Tasks[record.TaskID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, record.TaskID)
	}
	if current, _, found := b.FindTask(record.TaskID); !found || current != domain.GroupCompleted {
		return fmt.Errorf("%w: %s", domain.ErrTaskMoved, record.TaskID)
	}

	b.Group(domain.GroupCompleted).Remove(record.TaskID)
	g.Insert(record.TaskID, record.Position)
	task.Status = record.PrevStatus
	task.CompletedAt = record.PrevCompletedAt

	s.persistLocked()
	return nil
}

// FinalDeleteTask removes a task from the task map
func (s *Store) FinalDeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Tasks[taskID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	delete(s.data.Tasks, taskID)
	s.logger.Debug("task deleted", "task_id", taskID)
	s.persistLocked()
	return nil
}
