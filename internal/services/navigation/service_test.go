package navigation

import (
	"testing"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestGroups() []board.Group {
	return []board.Group{
		{
			ID:        domain.GroupBacklog,
			Collapsed: true,
			Tasks:     []domain.Task{{ID: "t0", What: "Hidden in backlog"}},
		},
		{
			ID: domain.GroupFocus,
			Tasks: []domain.Task{
				{ID: "t1", What: "Task 1"},
				{ID: "t2", What: "Task 2"},
				{ID: "t3", What: "Task 3"},
			},
		},
		{
			ID:    domain.GroupInProgress,
			Tasks: []domain.Task{{ID: "t4", What: "Task 4"}},
		},
		{
			ID: domain.GroupOrgIntentions,
		},
	}
}

func TestNewService(t *testing.T) {
	svc := NewService()
	require.NotNil(t, svc)
	assert.NotNil(t, svc.GetCursor())
}

func TestService_GetPosition(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()

	// Fallback group is the collapsed backlog, nothing selectable
	pos := svc.GetPosition(groups)
	assert.False(t, pos.Valid)
	assert.Equal(t, 0, pos.Group)

	svc.SelectTask("t2", 1)
	pos = svc.GetPosition(groups)
	assert.Equal(t, Position{Group: 1, Task: 1, Valid: true}, pos)
}

func TestService_GetPosition_Empty(t *testing.T) {
	svc := NewService()
	assert.Equal(t, Position{}, svc.GetPosition(nil))
	assert.Nil(t, svc.GetCurrentTask(nil))
	_, ok := svc.GetCurrentGroup(nil)
	assert.False(t, ok)
}

func TestService_CollapsedTaskNotSelectable(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()

	svc.SelectTask("t0", 0)
	assert.False(t, svc.GetPosition(groups).Valid)
	assert.False(t, svc.JumpToTaskByID(groups, "t0"))
}

func TestService_MoveDownUp(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t1", 1)

	svc.MoveDown(groups)
	assert.Equal(t, "t2", svc.GetCurrentTask(groups).ID)

	svc.MoveDown(groups)
	svc.MoveDown(groups)
	assert.Equal(t, "t3", svc.GetCurrentTask(groups).ID, "clamped at bottom")

	svc.MoveUp(groups)
	svc.MoveUp(groups)
	svc.MoveUp(groups)
	assert.Equal(t, "t1", svc.GetCurrentTask(groups).ID, "clamped at top")
}

func TestService_MoveLeftRight(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t3", 1)

	svc.MoveRight(groups)
	assert.Equal(t, "t4", svc.GetCurrentTask(groups).ID, "row clamps to shorter group")

	svc.MoveRight(groups)
	assert.Nil(t, svc.GetCurrentTask(groups))
	id, ok := svc.GetCurrentGroup(groups)
	require.True(t, ok)
	assert.Equal(t, domain.GroupOrgIntentions, id)

	svc.MoveRight(groups)
	id, _ = svc.GetCurrentGroup(groups)
	assert.Equal(t, domain.GroupOrgIntentions, id, "clamped at last group")

	svc.MoveLeft(groups)
	svc.MoveLeft(groups)
	id, _ = svc.GetCurrentGroup(groups)
	assert.Equal(t, domain.GroupFocus, id)
	assert.Equal(t, "t1", svc.GetCurrentTask(groups).ID)

	svc.MoveLeft(groups)
	id, _ = svc.GetCurrentGroup(groups)
	assert.Equal(t, domain.GroupBacklog, id)
	assert.Nil(t, svc.GetCurrentTask(groups))
}

func TestService_HalfPage(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t1", 1)

	svc.HalfPageDown(groups, 5)
	assert.Equal(t, "t3", svc.GetCurrentTask(groups).ID)

	svc.HalfPageUp(groups, 1)
	assert.Equal(t, "t2", svc.GetCurrentTask(groups).ID)
}

func TestService_GotoTopBottom(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t2", 1)

	svc.GotoBottom(groups)
	assert.Equal(t, "t3", svc.GetCurrentTask(groups).ID)

	svc.GotoTop(groups)
	assert.Equal(t, "t1", svc.GetCurrentTask(groups).ID)
}

func TestService_GotoFirstLastGroup(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t2", 1)

	svc.GotoLastGroup(groups)
	id, _ := svc.GetCurrentGroup(groups)
	assert.Equal(t, domain.GroupOrgIntentions, id)

	svc.GotoFirstGroup(groups)
	id, _ = svc.GetCurrentGroup(groups)
	assert.Equal(t, domain.GroupBacklog, id)
}

func TestService_CursorFollowsMovedTask(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("t2", 1)

	// t2 moves to inProgress
	groups[1].Tasks = []domain.Task{groups[1].Tasks[0], groups[1].Tasks[2]}
	groups[2].Tasks = append(groups[2].Tasks, domain.Task{ID: "t2"})

	assert.Equal(t, Position{Group: 2, Task: 1, Valid: true}, svc.GetPosition(groups))
}

func TestService_MissingTaskFallsBack(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()
	svc.SelectTask("gone", 2)

	assert.Equal(t, "t4", svc.GetCurrentTask(groups).ID)
}

func TestService_JumpToTaskByID(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()

	assert.True(t, svc.JumpToTaskByID(groups, "t4"))
	assert.Equal(t, "t4", svc.GetCurrentTask(groups).ID)

	assert.False(t, svc.JumpToTaskByID(groups, "nope"))
	assert.Equal(t, "t4", svc.GetCurrentTask(groups).ID)
}

func TestService_JumpToGroupByID(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()

	assert.True(t, svc.JumpToGroupByID(groups, domain.GroupFocus))
	assert.Equal(t, "t1", svc.GetCurrentTask(groups).ID)

	assert.False(t, svc.JumpToGroupByID(groups, domain.GroupDelegated))
}

func TestService_BoardCursor(t *testing.T) {
	svc := NewService()
	groups := makeTestGroups()

	assert.Equal(t, board.Cursor{Group: 0, Task: -1}, svc.BoardCursor(groups))

	svc.SelectTask("t3", 1)
	assert.Equal(t, board.Cursor{Group: 1, Task: 2}, svc.BoardCursor(groups))

	svc.Reset()
	assert.Equal(t, Cursor{}, *svc.GetCursor())
}
