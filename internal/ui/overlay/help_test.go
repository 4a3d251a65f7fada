package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHelpOverlay(t *testing.T) {
	help := NewHelpOverlay("Keys")

	assert.Equal(t, "Keys", help.Title())
	assert.NotNil(t, help.styles)
	assert.Zero(t, help.scroll)

	width, height := help.Size()
	assert.GreaterOrEqual(t, width, 40)
	assert.GreaterOrEqual(t, height, 20)
}

func TestHelpOverlay_View_ContainsKeyBindings(t *testing.T) {
	help := NewHelpOverlay("Keys")
	help.viewHeight = 100

	view := help.View()

	for _, category := range []string{"Navigation", "Tasks", "Groups", "Boards", "Other"} {
		assert.Contains(t, view, category)
	}
	for _, binding := range []string{"h/l", "j/k", "Space", "Undo last delete or complete", "Remove expired completed tasks", "Quit"} {
		assert.Contains(t, view, binding)
	}
	assert.NotContains(t, view, "to scroll")
}

func TestHelpOverlay_Scroll(t *testing.T) {
	help := NewHelpOverlay("Keys")
	help.viewHeight = 5
	help.View() // computes maxScroll

	help.Update(key("j"))
	assert.Equal(t, 1, help.scroll)

	help.Update(key("G"))
	assert.Equal(t, help.maxScroll, help.scroll)
	assert.Greater(t, help.maxScroll, 0)

	help.Update(key("j"))
	assert.Equal(t, help.maxScroll, help.scroll, "clamped at bottom")

	help.Update(key("g"))
	assert.Zero(t, help.scroll)

	help.Update(key("k"))
	assert.Zero(t, help.scroll, "clamped at top")

	assert.Contains(t, help.View(), "to scroll")
}

func TestHelpOverlay_Close(t *testing.T) {
	for _, k := range []string{"esc", "q", "?"} {
		_, cmd := NewHelpOverlay("Keys").Update(key(k))
		assert.True(t, hasClose(collect(t, cmd)), k)
	}
}
