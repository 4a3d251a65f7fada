package domain

// CurrentVersion is the latest persisted schema version
const CurrentVersion = 7

// Default board titles
const (
	FirstBoardTitle = "My Project"
	NewBoardTitle   = "New board"
)

// DefaultFullWidth is the full-width flag each group starts with
var DefaultFullWidth = map[GroupID]bool{
	GroupBacklog:       true,
	GroupFocus:         false,
	GroupInProgress:    false,
	GroupOrgIntentions: true,
	GroupDelegated:     true,
	GroupCompleted:     true,
}

// DefaultSettings returns the settings a fresh dataset starts with
func DefaultSettings() Settings {
	return Settings{
		Language:        LanguageAuto,
		DefaultPriority: PriorityMedium,
		CardView:        CardViewDefault,
		CardLayout:      CardLayoutSingle,
	}
}

// NewGroup returns an empty group with the defaults for the given identity
func NewGroup(id GroupID) *Group {
	return &Group{
		TaskIDs:   []string{},
		FullWidth: DefaultFullWidth[id],
	}
}

// NewBoard returns a board holding all six default groups
func NewBoard(title string) *Board {
	groups := make(map[GroupID]*Group, len(GroupIDs))
	for _, id := range GroupIDs {
		groups[id] = NewGroup(id)
	}
	groups[GroupBacklog].Collapsed = true
	groups[GroupCompleted].Collapsed = true
	retention := DefaultRetentionDays
	groups[GroupCompleted].CompletedRetentionDays = &retention

	return &Board{
		ID:             NewID(),
		Title:          title,
		Groups:         groups,
		NotesCollapsed: true,
		HiddenGroups:   []GroupID{},
	}
}

// NewPluginData returns a fresh dataset with one default board. Nothing is shared between calls.
func NewPluginData() *PluginData {
	return &PluginData{
		Version:  CurrentVersion,
		Settings: DefaultSettings(),
		Boards:   []*Board{NewBoard(FirstBoardTitle)},
		Tasks:    map[string]*Task{},
	}
}
