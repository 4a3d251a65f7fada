// Package domain contains the persisted board schema: tasks, groups, boards, settings and the
// root PluginData aggregate, plus the defaults every new value starts from.
package domain

// GroupID identifies one of the six fixed task groups of a board
type GroupID string

const (
	GroupBacklog       GroupID = "backlog"
	GroupFocus         GroupID = "focus"
	GroupInProgress    GroupID = "inProgress"
	GroupOrgIntentions GroupID = "orgIntentions"
	GroupDelegated     GroupID = "delegated"
	GroupCompleted     GroupID = "completed"
)

// GroupIDs lists the fixed groups in display order.
var GroupIDs = []GroupID{
	GroupBacklog,
	GroupFocus,
	GroupInProgress,
	GroupOrgIntentions,
	GroupDelegated,
	GroupCompleted,
}

// Valid reports whether g is one of the six fixed groups
func (g GroupID) Valid() bool {
	return g.Index() >= 0
}

// Index returns the display position of the group, or -1 for unknown ids
func (g GroupID) Index() int {
	for i, id := range GroupIDs {
		if id == g {
			return i
		}
	}
	return -1
}

// String returns the display string
func (g GroupID) String() string {
	return string(g)
}

// ParseGroupID converts a string into a known GroupID
func ParseGroupID(s string) (GroupID, error) {
	g := GroupID(s)
	if !g.Valid() {
		return "", ErrUnknownGroup
	}
	return g, nil
}

// Status represents task status
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "inProgress"
	StatusWaiting    Status = "waiting"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusWaiting, StatusCompleted:
		return true
	}
	return false
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Short returns single character representation
func (p Priority) Short() string {
	switch p {
	case PriorityLow:
		return "L"
	case PriorityMedium:
		return "M"
	case PriorityHigh:
		return "H"
	default:
		return "?"
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Language is the interface language setting
type Language string

const (
	LanguageAuto Language = "auto"
	LanguageEN   Language = "en"
	LanguageRU   Language = "ru"
)

// Valid reports whether l is a known language setting
func (l Language) Valid() bool {
	return l == LanguageAuto || l == LanguageEN || l == LanguageRU
}

// CardView controls card display density
type CardView string

const (
	CardViewDefault CardView = "default"
	CardViewCompact CardView = "compact"
)

// Valid reports whether v is a known card view
func (v CardView) Valid() bool {
	return v == CardViewDefault || v == CardViewCompact
}

// CardLayout controls how cards are arranged inside a group
type CardLayout string

const (
	CardLayoutSingle CardLayout = "single"
	CardLayoutMulti  CardLayout = "multi"
)

// Valid reports whether l is a known card layout
func (l CardLayout) Valid() bool {
	return l == CardLayoutSingle || l == CardLayoutMulti
}
