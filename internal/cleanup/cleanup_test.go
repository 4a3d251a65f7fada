package cleanup

import (
	"sort"
	"testing"
	"time"

	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 24, 14, 0, 0, 0, time.Local)

func daysAgo(n int) string {
	return domain.FormatDate(now.AddDate(0, 0, -n))
}

func intPtr(v int) *int { return &v }

func makeBoard(id string, completed []string, retention *int) *domain.Board {
	b := domain.NewBoard("Board")
	b.ID = id
	b.Group(domain.GroupCompleted).TaskIDs = append([]string{}, completed...)
	b.Group(domain.GroupCompleted).CompletedRetentionDays = retention
	return b
}

func makeTask(id, completedAt string) *domain.Task {
	return &domain.Task{
		ID:          id,
		What:        "Task",
		CreatedAt:   "2026-01-01",
		CompletedAt: completedAt,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusCompleted,
	}
}

func TestCompletedTasks(t *testing.T) {
	tests := []struct {
		name        string
		retention   *int
		completedAt string
		wantKept    bool
	}{
		{"expired with retention 30", intPtr(30), daysAgo(31), false},
		{"fresh with retention 30", intPtr(30), daysAgo(5), true},
		{"no completedAt", intPtr(30), "", true},
		{"null retention keeps fresh task", nil, daysAgo(5), true},
		{"null retention evicts old task", nil, daysAgo(31), false},
		{"exactly retention days old", intPtr(30), daysAgo(30), true},
		{"null retention boundary", nil, daysAgo(30), true},
		{"custom retention boundary", intPtr(7), daysAgo(7), true},
		{"custom retention one day over", intPtr(7), daysAgo(8), false},
		{"completed today with zero retention", intPtr(0), daysAgo(0), true},
		{"unparseable completedAt", intPtr(1), "sometime", true},
		{"timestamp completedAt", intPtr(30), now.AddDate(0, 0, -40).Format(time.RFC3339), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := makeBoard("b1", []string{"t1"}, tt.retention)
			tasks := map[string]*domain.Task{"t1": makeTask("t1", tt.completedAt)}

			report := CompletedTasks(board, tasks, now)

			if tt.wantKept {
				assert.Equal(t, []string{"t1"}, board.Group(domain.GroupCompleted).TaskIDs)
				assert.Contains(t, tasks, "t1")
				assert.Empty(t, report.Expired)
			} else {
				assert.Empty(t, board.Group(domain.GroupCompleted).TaskIDs)
				assert.NotContains(t, tasks, "t1")
				assert.Equal(t, []string{"t1"}, report.Expired)
			}
		})
	}
}

func TestCompletedTasks_DropsDanglingAndKeepsOrder(t *testing.T) {
	board := makeBoard("b1", []string{"a", "ghost", "old", "b", "c"}, nil)
	tasks := map[string]*domain.Task{
		"a":   makeTask("a", daysAgo(1)),
		"old": makeTask("old", daysAgo(45)),
		"b":   makeTask("b", ""),
		"c":   makeTask("c", daysAgo(29)),
	}

	report := CompletedTasks(board, tasks, now)

	assert.Equal(t, []string{"a", "b", "c"}, board.Group(domain.GroupCompleted).TaskIDs)
	assert.Equal(t, 1, report.Dangling)
	assert.Equal(t, []string{"old"}, report.Expired)
	assert.Len(t, tasks, 3)
}

func TestCompletedTasks_Idempotent(t *testing.T) {
	board := makeBoard("b1", []string{"a", "old"}, nil)
	tasks := map[string]*domain.Task{"a": makeTask("a", daysAgo(1)), "old": makeTask("old", daysAgo(60))}

	CompletedTasks(board, tasks, now)
	second := CompletedTasks(board, tasks, now)

	assert.True(t, second.Empty())
	assert.Equal(t, []string{"a"}, board.Group(domain.GroupCompleted).TaskIDs)
}

func TestOrphanedTasks(t *testing.T) {
	t.Run("unreferenced task removed", func(t *testing.T) {
		data := &domain.PluginData{
			Boards: []*domain.Board{makeBoard("b1", nil, nil)},
			Tasks:  map[string]*domain.Task{"orphan": makeTask("orphan", "")},
		}

		orphaned := OrphanedTasks(data)

		assert.Equal(t, []string{"orphan"}, orphaned)
		assert.Empty(t, data.Tasks)
	})

	t.Run("referenced tasks kept", func(t *testing.T) {
		board := makeBoard("b1", []string{"t1"}, nil)
		board.Group(domain.GroupFocus).TaskIDs = []string{"t2"}
		data := &domain.PluginData{
			Boards: []*domain.Board{board},
			Tasks:  map[string]*domain.Task{"t1": makeTask("t1", ""), "t2": makeTask("t2", "")},
		}

		assert.Empty(t, OrphanedTasks(data))
		assert.Len(t, data.Tasks, 2)
	})

	t.Run("reference from another board counts", func(t *testing.T) {
		data := &domain.PluginData{
			Boards: []*domain.Board{makeBoard("b1", []string{"t1"}, nil), makeBoard("b2", nil, nil)},
			Tasks:  map[string]*domain.Task{"t1": makeTask("t1", "")},
		}

		assert.Empty(t, OrphanedTasks(data))
		assert.Contains(t, data.Tasks, "t1")
	})
}

func TestOrphanedTasks_KeySetEqualsReferencedSet(t *testing.T) {
	b1 := makeBoard("b1", []string{"c1", "missing"}, nil)
	b1.Group(domain.GroupFocus).TaskIDs = []string{"f1", "f2"}
	b2 := makeBoard("b2", nil, nil)
	b2.Group(domain.GroupBacklog).TaskIDs = []string{"x1"}
	data := &domain.PluginData{
		Boards: []*domain.Board{b1, b2},
		Tasks: map[string]*domain.Task{
			"c1": makeTask("c1", ""), "f1": makeTask("f1", ""), "f2": makeTask("f2", ""),
			"x1": makeTask("x1", ""), "o1": makeTask("o1", ""), "o2": makeTask("o2", ""),
		},
	}

	orphaned := OrphanedTasks(data)
	assert.Equal(t, []string{"o1", "o2"}, orphaned)

	var keys []string
	for id := range data.Tasks {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"c1", "f1", "f2", "x1"}, keys)
}

func TestSweep(t *testing.T) {
	b1 := makeBoard("b1", []string{"old", "new"}, nil)
	b2 := makeBoard("b2", []string{"old2"}, intPtr(3))
	data := &domain.PluginData{
		Boards: []*domain.Board{b1, b2},
		Tasks: map[string]*domain.Task{
			"old":    makeTask("old", daysAgo(31)),
			"new":    makeTask("new", daysAgo(2)),
			"old2":   makeTask("old2", daysAgo(4)),
			"orphan": makeTask("orphan", ""),
		},
	}

	report := Sweep(data, now)

	require.False(t, report.Empty())
	assert.ElementsMatch(t, []string{"old", "old2"}, report.Expired)
	assert.Equal(t, []string{"orphan"}, report.Orphaned)
	assert.Len(t, data.Tasks, 1)
	assert.Contains(t, data.Tasks, "new")

	assert.True(t, Sweep(data, now).Empty())
}

func TestDanglingReferences(t *testing.T) {
	board := makeBoard("b1", []string{"done", "gone"}, nil)
	board.Group(domain.GroupFocus).TaskIDs = []string{"ghost", "a", "b"}
	board.Group(domain.GroupBacklog).TaskIDs = []string{"a", "ghost"}
	tasks := map[string]*domain.Task{
		"a":    makeTask("a", ""),
		"b":    makeTask("b", ""),
		"done": makeTask("done", daysAgo(1)),
	}

	dropped := DanglingReferences(board, tasks)

	assert.Equal(t, 3, dropped)
	assert.Equal(t, []string{"a", "b"}, board.Group(domain.GroupFocus).TaskIDs)
	assert.Equal(t, []string{"a"}, board.Group(domain.GroupBacklog).TaskIDs)
	assert.Equal(t, []string{"done"}, board.Group(domain.GroupCompleted).TaskIDs)
	assert.Equal(t, 0, DanglingReferences(board, tasks))
}

func TestSweep_HealsDanglingInEveryGroup(t *testing.T) {
	b := makeBoard("b1", nil, nil)
	b.Group(domain.GroupFocus).TaskIDs = []string{"ghost", "kept"}
	b.Group(domain.GroupDelegated).TaskIDs = []string{"ghost"}
	data := &domain.PluginData{
		Boards: []*domain.Board{b},
		Tasks:  map[string]*domain.Task{"kept": makeTask("kept", "")},
	}

	report := Sweep(data, now)

	assert.Equal(t, 2, report.Dangling)
	assert.Equal(t, []string{"kept"}, b.Group(domain.GroupFocus).TaskIDs)
	assert.Empty(t, b.Group(domain.GroupDelegated).TaskIDs)
	assert.NotContains(t, data.ReferencedTaskIDs(), "ghost")
	assert.True(t, Sweep(data, now).Empty())
}
