package store

import (
	"fmt"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// GroupSettings are the editable limits of a group
type GroupSettings struct {
	WipLimit               *int
	CompletedRetentionDays *int
}

// SettingsPatch holds the settings to change; nil fields are left alone
type SettingsPatch struct {
	Language        *domain.Language
	DefaultPriority *domain.Priority
	CardView        *domain.CardView
	CardLayout      *domain.CardLayout
}

// ActiveBoardID returns the id of the board mutations without a board id act on
func (s *Store) ActiveBoardID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeBoardID
}

// ActiveBoard returns a copy of the active board
func (s *Store) ActiveBoard() (*domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.data.Board(s.activeBoardID)
	if b == nil {
		return nil, domain.ErrNoActiveBoard
	}
	return b.Clone(), nil
}

// SetActiveBoard switches the active board
func (s *Store) SetActiveBoard(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.board(boardID); err != nil {
		return err
	}
	s.activeBoardID = boardID
	return nil
}

// CreateBoard appends a board with six default groups and makes it active. An empty title
// uses the default title for new boards.
func (s *Store) CreateBoard(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = domain.NewBoardTitle
	}
	b := domain.NewBoard(title)
	s.data.Boards = append(s.data.Boards, b)
	s.activeBoardID = b.ID

	s.logger.Info("board created", "board_id", b.ID, "title", title)
	s.persistLocked()
	return b.ID
}

// DeleteBoard removes a board together with the tasks only it referenced, then makes the first
// remaining board active. The last board cannot be deleted.
func (s *Store) DeleteBoard(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Boards) <= 1 {
		return domain.ErrLastBoard
	}
	b, err := s.board(boardID)
	if err != nil {
		return err
	}

	remaining := make([]*domain.Board, 0, len(s.data.Boards)-1)
	for _, other := range s.data.Boards {
		if other.ID != boardID {
			remaining = append(remaining, other)
		}
	}
	s.data.Boards = remaining

	stillUsed := s.data.ReferencedTaskIDs()
	deleted := 0
	for _, id := range b.TaskIDs() {
		if _, ok := stillUsed[id]; ok {
			continue
		}
		if _, ok := s.data.Tasks[id]; ok {
			delete(s.data.Tasks, id)
			deleted++
		}
	}
	s.activeBoardID = s.data.Boards[0].ID

	s.logger.Info("board deleted", "board_id", boardID, "tasks", deleted)
	s.persistLocked()
	return nil
}

// UpdateBoard replaces a board's title and subtitle
func (s *Store) UpdateBoard(boardID, title, subtitle string) error {
	return s.mutateBoard(boardID, func(b *domain.Board) {
		b.Title = title
		b.Subtitle = subtitle
	})
}

// UpdateBoardNotes replaces a board's notes
func (s *Store) UpdateBoardNotes(boardID, notes string) error {
	return s.mutateBoard(boardID, func(b *domain.Board) {
		b.Notes = notes
	})
}

// ToggleNotesCollapsed flips whether a board's notes are collapsed
func (s *Store) ToggleNotesCollapsed(boardID string) error {
	return s.mutateBoard(boardID, func(b *domain.Board) {
		b.NotesCollapsed = !b.NotesCollapsed
	})
}

// ToggleNotesHidden flips whether a board's notes are shown at all
func (s *Store) ToggleNotesHidden(boardID string) error {
	return s.mutateBoard(boardID, func(b *domain.Board) {
		b.NotesHidden = !b.NotesHidden
	})
}

// SetGroupHidden hides or shows a group of a board
func (s *Store) SetGroupHidden(boardID string, group domain.GroupID, hidden bool) error {
	if !group.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownGroup, group)
	}
	return s.mutateBoard(boardID, func(b *domain.Board) {
		kept := make([]domain.GroupID, 0, len(b.HiddenGroups)+1)
		for _, id := range b.HiddenGroups {
			if id != group {
				kept = append(kept, id)
			}
		}
		if hidden {
			kept = append(kept, group)
		}
		b.HiddenGroups = kept
	})
}

// ToggleGroupCollapsed flips a group's collapsed flag
func (s *Store) ToggleGroupCollapsed(boardID string, group domain.GroupID) error {
	return s.mutateGroup(boardID, group, func(g *domain.Group) {
		g.Collapsed = !g.Collapsed
	})
}

// SetGroupFullWidth sets whether a group takes a full row
func (s *Store) SetGroupFullWidth(boardID string, group domain.GroupID, fullWidth bool) error {
	return s.mutateGroup(boardID, group, func(g *domain.Group) {
		g.FullWidth = fullWidth
	})
}

// UpdateGroupSettings replaces a group's WIP limit and retention. Nil means unlimited and the
// default retention respectively.
func (s *Store) UpdateGroupSettings(boardID string, group domain.GroupID, settings GroupSettings) error {
	return s.mutateGroup(boardID, group, func(g *domain.Group) {
		g.WipLimit = copyInt(settings.WipLimit)
		g.CompletedRetentionDays = copyInt(settings.CompletedRetentionDays)
	})
}

// UpdateSettings applies patch after validating every value it sets
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	if patch.Language != nil && !patch.Language.Valid() {
		return fmt.Errorf("%w: language %q", domain.ErrInvalidSetting, *patch.Language)
	}
	if patch.DefaultPriority != nil && !patch.DefaultPriority.Valid() {
		return fmt.Errorf("%w: priority %q", domain.ErrInvalidSetting, *patch.DefaultPriority)
	}
	if patch.CardView != nil && !patch.CardView.Valid() {
		return fmt.Errorf("%w: card view %q", domain.ErrInvalidSetting, *patch.CardView)
	}
	if patch.CardLayout != nil && !patch.CardLayout.Valid() {
		return fmt.Errorf("%w: card layout %q", domain.ErrInvalidSetting, *patch.CardLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings := &s.data.Settings
	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.DefaultPriority != nil {
		settings.DefaultPriority = *patch.DefaultPriority
	}
	if patch.CardView != nil {
		settings.CardView = *patch.CardView
	}
	if patch.CardLayout != nil {
		settings.CardLayout = *patch.CardLayout
	}
	s.persistLocked()
	return nil
}

func (s *Store) mutateBoard(boardID string, fn func(*domain.Board)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.board(boardID)
	if err != nil {
		return err
	}
	fn(b)
	s.persistLocked()
	return nil
}

func (s *Store) mutateGroup(boardID string, group domain.GroupID, fn func(*domain.Group)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, g, err := s.group(boardID, group)
	if err != nil {
		return err
	}
	fn(g)
	s.persistLocked()
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
