package domain

// DefaultRetentionDays applies when a completed group has no retention of its own
const DefaultRetentionDays = 30

// Group is one of the six fixed buckets of a board. TaskIDs order is display order.
type Group struct {
	TaskIDs                []string `json:"taskIds"`
	WipLimit               *int     `json:"wipLimit"`
	Collapsed              bool     `json:"collapsed"`
	CompletedRetentionDays *int     `json:"completedRetentionDays"`
	FullWidth              bool     `json:"fullWidth"`
}

// RetentionDays returns the configured retention, or DefaultRetentionDays when unset
func (g *Group) RetentionDays() int {
	if g.CompletedRetentionDays == nil {
		return DefaultRetentionDays
	}
	return *g.CompletedRetentionDays
}

// OverWip reports whether the group holds more tasks than its WIP limit
func (g *Group) OverWip() bool {
	return g.WipLimit != nil && len(g.TaskIDs) > *g.WipLimit
}

// IndexOf returns the position of taskID, or -1
func (g *Group) IndexOf(taskID string) int {
	for i, id := range g.TaskIDs {
		if id == taskID {
			return i
		}
	}
	return -1
}

// Remove drops taskID from the group and returns the position it held
func (g *Group) Remove(taskID string) (int, bool) {
	idx := g.IndexOf(taskID)
	if idx == -1 {
		return -1, false
	}
	g.TaskIDs = append(g.TaskIDs[:idx], g.TaskIDs[idx+1:]...)
	return idx, true
}

// Insert places taskID at index. Indexes outside the list land at the nearest end.
func (g *Group) Insert(taskID string, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(g.TaskIDs) {
		index = len(g.TaskIDs)
	}
	g.TaskIDs = append(g.TaskIDs, "")
	copy(g.TaskIDs[index+1:], g.TaskIDs[index:])
	g.TaskIDs[index] = taskID
}

// Board is a named collection of the six fixed groups plus notes
type Board struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Subtitle       string             `json:"subtitle"`
	Groups         map[GroupID]*Group `json:"groups"`
	Notes          string             `json:"notes"`
	NotesCollapsed bool               `json:"notesCollapsed"`
	NotesHidden    bool               `json:"notesHidden"`
	HiddenGroups   []GroupID          `json:"hiddenGroups"`
}

// Group returns the board's group with the given id, or nil
func (b *Board) Group(id GroupID) *Group {
	if b.Groups == nil {
		return nil
	}
	return b.Groups[id]
}

// IsHidden reports whether the group is hidden from display
func (b *Board) IsHidden(id GroupID) bool {
	for _, h := range b.HiddenGroups {
		if h == id {
			return true
		}
	}
	return false
}

// VisibleGroups returns the non-hidden groups in display order
func (b *Board) VisibleGroups() []GroupID {
	visible := make([]GroupID, 0, len(GroupIDs))
	for _, id := range GroupIDs {
		if !b.IsHidden(id) {
			visible = append(visible, id)
		}
	}
	return visible
}

// TaskIDs returns every task id referenced by any group of the board
func (b *Board) TaskIDs() []string {
	var ids []string
	for _, id := range GroupIDs {
		if g := b.Group(id); g != nil {
			ids = append(ids, g.TaskIDs...)
		}
	}
	return ids
}

// FindTask returns the group holding taskID and its position
func (b *Board) FindTask(taskID string) (GroupID, int, bool) {
	for _, id := range GroupIDs {
		g := b.Group(id)
		if g == nil {
			continue
		}
		if idx := g.IndexOf(taskID); idx != -1 {
			return id, idx, true
		}
	}
	return "", -1, false
}

// Settings holds the process-wide preferences
type Settings struct {
	Language        Language   `json:"language"`
	DefaultPriority Priority   `json:"defaultPriority"`
	CardView        CardView   `json:"cardView"`
	CardLayout      CardLayout `json:"cardLayout"`
}

// PluginData is the root persisted aggregate
type PluginData struct {
	Version  int              `json:"version"`
	Settings Settings         `json:"settings"`
	Boards   []*Board         `json:"boards"`
	Tasks    map[string]*Task `json:"tasks"`
}

// Board returns the board with the given id, or nil
func (d *PluginData) Board(id string) *Board {
	for _, b := range d.Boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ReferencedTaskIDs returns the set of task ids referenced by any group of any board
func (d *PluginData) ReferencedTaskIDs() map[string]struct{} {
	used := make(map[string]struct{}, len(d.Tasks))
	for _, b := range d.Boards {
		for _, id := range b.TaskIDs() {
			used[id] = struct{}{}
		}
	}
	return used
}
