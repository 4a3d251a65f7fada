package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfirm() *ConfirmDialog {
	return NewConfirmDialog("Delete board", "Delete this board and all of its tasks?", "Yes", "No", "board-1")
}

func TestNewConfirmDialog(t *testing.T) {
	dialog := newTestConfirm()

	assert.Equal(t, "Delete board", dialog.Title())
	assert.False(t, dialog.selected, "defaults to No")
	assert.NotNil(t, dialog.styles)

	width, height := dialog.Size()
	assert.Equal(t, 60, width)
	assert.Equal(t, 7, height)
}

func TestConfirmDialog_Keys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		confirmed bool
	}{
		{"lowercase y", []string{"y"}, true},
		{"uppercase Y", []string{"Y"}, true},
		{"lowercase n", []string{"n"}, false},
		{"escape", []string{"esc"}, false},
		{"enter defaults to no", []string{"enter"}, false},
		{"right then enter", []string{"right", "enter"}, true},
		{"tab then enter", []string{"tab", "enter"}, true},
		{"l then h then enter", []string{"l", "h", "enter"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := newTestConfirm()

			var msgs []tea.Msg
			for _, k := range tt.keys {
				_, cmd := dialog.Update(key(k))
				msgs = append(msgs, collect(t, cmd)...)
			}

			sel := findMsg[SelectionMsg](t, msgs)
			result, ok := sel.Value.(ConfirmResult)
			require.True(t, ok)
			assert.Equal(t, tt.confirmed, result.Confirmed)
			assert.Equal(t, "board-1", result.Payload)
			assert.True(t, hasClose(msgs))
			if tt.confirmed {
				assert.Equal(t, "yes", sel.Key)
			} else {
				assert.Equal(t, "no", sel.Key)
			}
		})
	}
}

func TestConfirmDialog_IgnoresOtherKeys(t *testing.T) {
	dialog := newTestConfirm()

	_, cmd := dialog.Update(key("x"))
	assert.Nil(t, cmd)

	_, cmd = dialog.Update("not a key")
	assert.Nil(t, cmd)
}

func TestConfirmDialog_View(t *testing.T) {
	dialog := newTestConfirm()

	view := dialog.View()

	assert.Contains(t, view, "Delete this board and all of its tasks?")
	assert.Contains(t, view, "[Y] Yes")
	assert.Contains(t, view, "[N] No")
}
