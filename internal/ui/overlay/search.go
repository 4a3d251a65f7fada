package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg is emitted on every keystroke so the board can jump to the first match
type SearchMsg struct {
	Query string
	// Cancelled is set when the search was abandoned with esc
	Cancelled bool
}

// SearchOverlay is a one-line task finder shown in place of the status bar
type SearchOverlay struct {
	input      textinput.Model
	matchCount int
	styles     *Styles
}

// NewSearchOverlay creates a new search overlay
func NewSearchOverlay(placeholder string, styles *Styles) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchOverlay{
		input:  ti,
		styles: styles,
	}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Query returns the current search text
func (s *SearchOverlay) Query() string {
	return s.input.Value()
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			// The cursor stays on the match
			return s, closeCmd
		case tea.KeyEsc:
			s.input.SetValue("")
			return s, emit(SearchMsg{Cancelled: true})
		}
	}

	prevValue := s.input.Value()
	s.input, cmd = s.input.Update(msg)

	if s.input.Value() != prevValue {
		query := s.input.Value()
		return s, tea.Batch(
			cmd,
			func() tea.Msg { return SearchMsg{Query: query} },
		)
	}

	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	inputView := s.input.View()
	if s.input.Value() != "" {
		inputView += s.styles.Footer.UnsetMarginTop().Render(fmt.Sprintf(" (%d matches)", s.matchCount))
	}
	return inputView
}

// Title implements Overlay interface (returns empty for search bar)
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay interface (full-width single line)
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}
