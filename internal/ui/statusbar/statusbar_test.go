package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	sb := New(types.ModeNormal, 200, styles.New())

	result := ansi.Strip(sb.Render())

	assert.Contains(t, result, "NORMAL")
	assert.Contains(t, result, "h/l: groups")
	assert.Contains(t, result, "j/k: tasks")
	assert.Contains(t, result, "u: undo")
}

func TestStatusBar_RenderMoveMode(t *testing.T) {
	sb := New(types.ModeMove, 200, styles.New())

	result := ansi.Strip(sb.Render())

	assert.Contains(t, result, "MOVE")
	assert.Contains(t, result, "Enter/m: drop")
}

func TestStatusBar_Info(t *testing.T) {
	sb := New(types.ModeMove, 120, styles.New()).WithInfo("Work 1/2")

	result := ansi.Strip(sb.Render())

	assert.Contains(t, result, "Work 1/2")
}

func TestStatusBar_InfoDroppedWhenNarrow(t *testing.T) {
	sb := New(types.ModeMove, 20, styles.New()).WithInfo("Work 1/2")

	result := ansi.Strip(sb.Render())

	assert.NotContains(t, result, "Work 1/2")
}

func TestGetHints(t *testing.T) {
	tests := []struct {
		name string
		mode types.Mode
		want string
	}{
		{"normal", types.ModeNormal, "h/l: groups  j/k: tasks  n: new  e: edit  m: move  c: done  d: delete  u: undo  /: find  ?: help  q: quit"},
		{"move", types.ModeMove, "h/l: group  j/k: position  Enter/m: drop  Esc: cancel"},
		{"unknown", types.Mode(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHints(tt.mode))
		})
	}
}

func TestStatusBar_StaysOnOneLine(t *testing.T) {
	for _, width := range []int{30, 60, 80, 100} {
		sb := New(types.ModeNormal, width, styles.New()).WithInfo("2/3")

		result := sb.Render()

		assert.Equal(t, 1, lipgloss.Height(result), "width %d", width)
		assert.LessOrEqual(t, lipgloss.Width(result), width, "width %d", width)
	}
}

func TestStatusBar_InfoShownBesideLongHints(t *testing.T) {
	sb := New(types.ModeNormal, 80, styles.New()).WithInfo("2/3")

	result := ansi.Strip(sb.Render())

	assert.Contains(t, result, "2/3")
	assert.Contains(t, result, "…")
}
