package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/undo"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewLines(m Model) []string {
	return strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
}

func TestViewHeight(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 20; i++ {
		addTask(t, m, domain.GroupFocus, "Task")
	}
	m.width = 80
	m.height = 24

	t.Run("normal view", func(t *testing.T) {
		assert.LessOrEqual(t, len(viewLines(m)), m.height)
	})

	t.Run("with overlay", func(t *testing.T) {
		m.overlayStack.Push(&testOverlay{})
		defer m.overlayStack.Clear()
		assert.LessOrEqual(t, len(viewLines(m)), m.height)
	})

	t.Run("with toasts", func(t *testing.T) {
		m.toasts = append(m.toasts, types.Toast{
			Message: "test toast",
			Expires: time.Now().Add(time.Hour),
		})
		assert.LessOrEqual(t, len(viewLines(m)), m.height)
	})
}

func TestView_Content(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, domain.GroupFocus, "Write quarterly report")

	out := ansi.Strip(m.View())

	assert.Contains(t, out, domain.FirstBoardTitle)
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "Write quarterly report")
	assert.Contains(t, out, "No tasks")
	assert.Contains(t, out, "NORMAL")
}

func TestView_Loading(t *testing.T) {
	m := newTestModel(t)
	m.width = 0
	assert.Equal(t, "Loading...", m.View())
}

func TestView_BoardPosition(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, ansi.Strip(m.View()), "1/2")

	m.store.CreateBoard("Home")
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "[Home]")
}

func TestView_MoveMode(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, domain.GroupFocus, "Alpha")
	m = press(m, "l", "m")

	assert.Contains(t, ansi.Strip(m.View()), "MOVE")
}

func TestView_Overlay(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "?")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Keys")
	assert.NotContains(t, out, domain.FirstBoardTitle)
}

func TestView_UndoToast(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, domain.GroupFocus, "Alpha")
	m = press(m, "l", "d")
	m.width = 150

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Deleted: Alpha")
	assert.Contains(t, out, "u to undo")
}

func TestUndoToast(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	toast := m.undoToast(undo.Entry{
		Kind:      undo.KindComplete,
		Label:     "Alpha",
		ExpiresAt: now.Add(2500 * time.Millisecond),
	}, now)
	assert.Equal(t, types.ToastSuccess, toast.Level)
	assert.Equal(t, "Completed: Alpha", toast.Message)
	assert.Equal(t, "u to undo · 3s", toast.Hint)

	toast = m.undoToast(undo.Entry{Kind: undo.KindDelete, ExpiresAt: now.Add(-time.Second)}, now)
	assert.Equal(t, types.ToastWarning, toast.Level)
	assert.Equal(t, "u to undo · 0s", toast.Hint)
}

func TestVisibleToasts(t *testing.T) {
	m := newTestModel(t)
	id := addTask(t, m, domain.GroupFocus, "Alpha")
	_, err := m.undo.Delete(m.store.ActiveBoardID(), domain.GroupFocus, id, "Alpha")
	require.NoError(t, err)

	now := time.Now()
	m.toasts = []types.Toast{
		{Message: "expired", Expires: now.Add(-time.Second)},
		{Message: "live", Expires: now.Add(time.Second)},
	}

	toasts := m.visibleToasts(now)
	require.Len(t, toasts, 2)
	assert.Equal(t, "Deleted: Alpha", toasts[0].Message)
	assert.Equal(t, "live", toasts[1].Message)
}

func TestScroll(t *testing.T) {
	content := strings.Join([]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, "\n")

	tests := []struct {
		name   string
		focus  int
		height int
		want   string
	}{
		{"fits", 9, 20, content},
		{"focus near top", 1, 4, "0\n1\n2\n3"},
		{"focus below middle", 4, 4, "4\n5\n6\n7"},
		{"clamped at bottom", 9, 4, "6\n7\n8\n9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scroll(content, tt.focus, tt.height))
		})
	}
}

type testOverlay struct{}

func (o *testOverlay) Init() tea.Cmd                           { return nil }
func (o *testOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return o, nil }
func (o *testOverlay) View() string                            { return "test overlay content" }
func (o *testOverlay) Title() string                           { return "Test" }
func (o *testOverlay) Size() (width, height int)               { return 40, 10 }

func TestView_Search(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, domain.GroupFocus, "Alpha")
	m = press(m, "/")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, domain.FirstBoardTitle)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "/ ")
	assert.NotContains(t, out, "NORMAL")
	assert.LessOrEqual(t, len(viewLines(m)), m.height)
}
