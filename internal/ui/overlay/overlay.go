package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an action is selected
type SelectionMsg struct {
	Key   string
	Value any
}

// closeCmd closes the current overlay
func closeCmd() tea.Msg {
	return CloseOverlayMsg{}
}

// emit sends msg and closes the overlay
func emit(msg tea.Msg) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return msg },
		closeCmd,
	)
}

// Render frames an overlay with its title, centered in a width x height area
func Render(o Overlay, s *Styles, width, height int) string {
	w, _ := o.Size()
	if w > width-2 {
		w = width - 2
	}
	body := s.Title.Render(o.Title()) + "\n" + o.View()
	box := s.Overlay.Width(w).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
