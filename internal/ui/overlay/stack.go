package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open dialogs of the board. Only the topmost one receives input. The task
// finder is the one overlay drawn inline in place of the status bar; every other overlay is
// modal and covers the board.
type Stack struct {
	open []Overlay
}

// NewStack returns a stack with nothing open
func NewStack() *Stack {
	return &Stack{}
}

// Push opens o above the current overlay and returns its init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.open = append(s.open, o)
	return o.Init()
}

// Pop closes the topmost overlay and returns it
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.open = s.open[:len(s.open)-1]
	}
	return top
}

// Current returns the topmost overlay, or nil
func (s *Stack) Current() Overlay {
	if len(s.open) == 0 {
		return nil
	}
	return s.open[len(s.open)-1]
}

// Finder returns the task finder when it is the topmost overlay
func (s *Stack) Finder() (*SearchOverlay, bool) {
	finder, ok := s.Current().(*SearchOverlay)
	return finder, ok
}

// Modal returns the topmost overlay unless it is the inline finder
func (s *Stack) Modal() Overlay {
	if _, ok := s.Finder(); ok {
		return nil
	}
	return s.Current()
}

// Len returns the number of open overlays
func (s *Stack) Len() int {
	return len(s.open)
}

// IsEmpty reports whether no overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.open) == 0
}

// Clear closes every overlay
func (s *Stack) Clear() {
	s.open = nil
}

// Update routes msg to the topmost overlay. CloseOverlayMsg closes it instead.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	model, cmd := top.Update(msg)
	if updated, ok := model.(Overlay); ok {
		s.open[len(s.open)-1] = updated
	}
	return cmd
}
