// Package navigation provides cursor and navigation state management
package navigation

import (
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
)

// Position represents a computed position in the board
type Position struct {
	Group int  // Index into the visible groups
	Task  int  // Index within the group
	Valid bool // Whether a task sits at the position
}

// Cursor tracks the selected task by ID so it survives moves and reloads
type Cursor struct {
	TaskID        string // Primary state: selected task ID
	FallbackGroup int    // Group to use when TaskID is not found
}

// tasksOf returns the selectable tasks of a group. Collapsed groups show none.
func tasksOf(g board.Group) []domain.Task {
	if g.Collapsed {
		return nil
	}
	return g.Tasks
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FindPosition computes the position of the cursor's task in the given groups
func (c *Cursor) FindPosition(groups []board.Group) Position {
	if c.TaskID != "" {
		for gIdx, g := range groups {
			for tIdx, task := range tasksOf(g) {
				if task.ID == c.TaskID {
					return Position{Group: gIdx, Task: tIdx, Valid: true}
				}
			}
		}
	}

	// No task selected or it left the view, use fallback group
	if len(groups) == 0 {
		return Position{}
	}
	g := clamp(c.FallbackGroup, 0, len(groups)-1)
	return Position{Group: g, Task: 0, Valid: len(tasksOf(groups[g])) > 0}
}

// SetTask updates the cursor to point to a specific task
func (c *Cursor) SetTask(taskID string, group int) {
	c.TaskID = taskID
	c.FallbackGroup = group
}

// MoveVertical moves up or down within a group, returns new task ID
func (c *Cursor) MoveVertical(groups []board.Group, delta int) string {
	pos := c.FindPosition(groups)
	if !pos.Valid {
		return c.TaskID
	}

	tasks := tasksOf(groups[pos.Group])
	idx := clamp(pos.Task+delta, 0, len(tasks)-1)
	c.SetTask(tasks[idx].ID, pos.Group)
	return c.TaskID
}

// MoveHorizontal moves to the previous or next group
func (c *Cursor) MoveHorizontal(groups []board.Group, delta int) string {
	pos := c.FindPosition(groups)
	return c.JumpToGroup(groups, pos.Group+delta)
}

// JumpToStart moves to first task in current group
func (c *Cursor) JumpToStart(groups []board.Group) string {
	pos := c.FindPosition(groups)
	if pos.Valid {
		c.SetTask(tasksOf(groups[pos.Group])[0].ID, pos.Group)
	}
	return c.TaskID
}

// JumpToEnd moves to last task in current group
func (c *Cursor) JumpToEnd(groups []board.Group) string {
	pos := c.FindPosition(groups)
	if pos.Valid {
		tasks := tasksOf(groups[pos.Group])
		c.SetTask(tasks[len(tasks)-1].ID, pos.Group)
	}
	return c.TaskID
}

// JumpToGroup moves to a specific group, keeping relative row position
func (c *Cursor) JumpToGroup(groups []board.Group, gIdx int) string {
	if len(groups) == 0 {
		return c.TaskID
	}
	gIdx = clamp(gIdx, 0, len(groups)-1)

	pos := c.FindPosition(groups)
	c.FallbackGroup = gIdx

	tasks := tasksOf(groups[gIdx])
	if len(tasks) == 0 {
		c.TaskID = "" // No task in target group
		return c.TaskID
	}
	c.TaskID = tasks[clamp(pos.Task, 0, len(tasks)-1)].ID
	return c.TaskID
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		cursor: Cursor{},
	}
}

// GetCursor returns the current cursor (for read access)
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor in the given groups
func (s *Service) GetPosition(groups []board.Group) Position {
	return s.cursor.FindPosition(groups)
}

// BoardCursor converts the cursor into the renderer's cursor
func (s *Service) BoardCursor(groups []board.Group) board.Cursor {
	pos := s.cursor.FindPosition(groups)
	task := pos.Task
	if !pos.Valid {
		task = -1
	}
	return board.Cursor{Group: pos.Group, Task: task}
}

// GetCurrentTask returns the currently selected task
func (s *Service) GetCurrentTask(groups []board.Group) *domain.Task {
	pos := s.cursor.FindPosition(groups)
	if !pos.Valid {
		return nil
	}
	task := tasksOf(groups[pos.Group])[pos.Task]
	return &task
}

// GetCurrentGroup returns the group the cursor is in
func (s *Service) GetCurrentGroup(groups []board.Group) (domain.GroupID, bool) {
	if len(groups) == 0 {
		return "", false
	}
	pos := s.cursor.FindPosition(groups)
	return groups[pos.Group].ID, true
}

// MoveDown moves cursor down in current group
func (s *Service) MoveDown(groups []board.Group) {
	s.cursor.MoveVertical(groups, 1)
}

// MoveUp moves cursor up in current group
func (s *Service) MoveUp(groups []board.Group) {
	s.cursor.MoveVertical(groups, -1)
}

// MoveLeft moves cursor to the previous group
func (s *Service) MoveLeft(groups []board.Group) {
	s.cursor.MoveHorizontal(groups, -1)
}

// MoveRight moves cursor to the next group
func (s *Service) MoveRight(groups []board.Group) {
	s.cursor.MoveHorizontal(groups, 1)
}

// HalfPageDown moves cursor half a page down
func (s *Service) HalfPageDown(groups []board.Group, halfPage int) {
	s.cursor.MoveVertical(groups, halfPage)
}

// HalfPageUp moves cursor half a page up
func (s *Service) HalfPageUp(groups []board.Group, halfPage int) {
	s.cursor.MoveVertical(groups, -halfPage)
}

// GotoTop moves cursor to first task in group
func (s *Service) GotoTop(groups []board.Group) {
	s.cursor.JumpToStart(groups)
}

// GotoBottom moves cursor to last task in group
func (s *Service) GotoBottom(groups []board.Group) {
	s.cursor.JumpToEnd(groups)
}

// GotoFirstGroup moves cursor to first group
func (s *Service) GotoFirstGroup(groups []board.Group) {
	s.cursor.JumpToGroup(groups, 0)
}

// GotoLastGroup moves cursor to last group
func (s *Service) GotoLastGroup(groups []board.Group) {
	s.cursor.JumpToGroup(groups, len(groups)-1)
}

// SelectTask directly sets the cursor to a specific task
func (s *Service) SelectTask(taskID string, group int) {
	s.cursor.SetTask(taskID, group)
}

// Reset clears the selection, used when switching boards
func (s *Service) Reset() {
	s.cursor = Cursor{}
}

// JumpToTaskByID finds and selects a task by ID
func (s *Service) JumpToTaskByID(groups []board.Group, taskID string) bool {
	for gIdx, g := range groups {
		for _, task := range tasksOf(g) {
			if task.ID == taskID {
				s.cursor.SetTask(task.ID, gIdx)
				return true
			}
		}
	}
	return false
}

// JumpToGroupByID moves the cursor into the group with the given id
func (s *Service) JumpToGroupByID(groups []board.Group, id domain.GroupID) bool {
	for gIdx, g := range groups {
		if g.ID == id {
			s.cursor.JumpToGroup(groups, gIdx)
			return true
		}
	}
	return false
}
