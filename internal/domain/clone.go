package domain

// Clone returns an independent copy of the group
func (g *Group) Clone() *Group {
	c := *g
	c.TaskIDs = append([]string{}, g.TaskIDs...)
	if g.WipLimit != nil {
		v := *g.WipLimit
		c.WipLimit = &v
	}
	if g.CompletedRetentionDays != nil {
		v := *g.CompletedRetentionDays
		c.CompletedRetentionDays = &v
	}
	return &c
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := *b
	if b.Groups != nil {
		c.Groups = make(map[GroupID]*Group, len(b.Groups))
		for id, g := range b.Groups {
			c.Groups[id] = g.Clone()
		}
	}
	if b.HiddenGroups != nil {
		c.HiddenGroups = append([]GroupID{}, b.HiddenGroups...)
	}
	return &c
}

// Clone returns a deep copy of the aggregate
func (d *PluginData) Clone() *PluginData {
	c := &PluginData{
		Version:  d.Version,
		Settings: d.Settings,
		Boards:   make([]*Board, 0, len(d.Boards)),
		Tasks:    make(map[string]*Task, len(d.Tasks)),
	}
	for _, b := range d.Boards {
		c.Boards = append(c.Boards, b.Clone())
	}
	for id, t := range d.Tasks {
		c.Tasks[id] = t.Clone()
	}
	return c
}
