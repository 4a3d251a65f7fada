package migration

import (
	"fmt"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// repair restores the structural invariants the typed model relies on: at least one board,
// exactly the six fixed groups per board, group ids that resolve to tasks, and non-nil
// collections. Valid data is left alone.
func repair(d *domain.PluginData) []string {
	var repairs []string

	if d.Tasks == nil {
		d.Tasks = map[string]*domain.Task{}
	}
	for id, t := range d.Tasks {
		if t == nil {
			delete(d.Tasks, id)
			repairs = append(repairs, fmt.Sprintf("dropped empty task %q", id))
			continue
		}
		if t.ID == "" {
			t.ID = id
		}
	}

	boards := d.Boards[:0]
	for _, b := range d.Boards {
		if b == nil {
			repairs = append(repairs, "dropped empty board")
			continue
		}
		repairs = append(repairs, repairBoard(b, d.Tasks)...)
		boards = append(boards, b)
	}
	d.Boards = boards

	if len(d.Boards) == 0 {
		d.Boards = []*domain.Board{domain.NewBoard(domain.FirstBoardTitle)}
		repairs = append(repairs, "created default board")
	}
	return repairs
}

func repairBoard(b *domain.Board, tasks map[string]*domain.Task) []string {
	var repairs []string

	if b.ID == "" {
		b.ID = domain.NewID()
		repairs = append(repairs, "assigned board id")
	}
	if b.Groups == nil {
		b.Groups = make(map[domain.GroupID]*domain.Group, len(domain.GroupIDs))
	}
	for id := range b.Groups {
		if !id.Valid() {
			delete(b.Groups, id)
			repairs = append(repairs, fmt.Sprintf("board %s: dropped unknown group %q", b.ID, id))
		}
	}
	for _, id := range domain.GroupIDs {
		g := b.Groups[id]
		if g == nil {
			b.Groups[id] = domain.NewGroup(id)
			repairs = append(repairs, fmt.Sprintf("board %s: added missing group %s", b.ID, id))
			continue
		}
		kept := make([]string, 0, len(g.TaskIDs))
		for _, taskID := range g.TaskIDs {
			if _, ok := tasks[taskID]; !ok {
				repairs = append(repairs, fmt.Sprintf("board %s: dropped missing task %q from %s", b.ID, taskID, id))
				continue
			}
			kept = append(kept, taskID)
		}
		g.TaskIDs = kept
	}
	if b.HiddenGroups == nil {
		b.HiddenGroups = []domain.GroupID{}
	}
	return repairs
}
