package app

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
	"github.com/riordanpawley/taskmaster/internal/services/undo"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
	"github.com/riordanpawley/taskmaster/internal/ui/overlay"
)

// deleteBoardRequest is the payload of the board deletion confirmation
type deleteBoardRequest struct {
	boardID string
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in any mode)
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	switch m.mode {
	case types.ModeMove:
		return m.handleMoveMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.groups()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Vertical navigation
	case "j", "down":
		m.nav.MoveDown(groups)
	case "k", "up":
		m.nav.MoveUp(groups)
	case "g":
		m.nav.GotoTop(groups)
	case "G":
		m.nav.GotoBottom(groups)
	case "ctrl+d":
		m.nav.HalfPageDown(groups, m.halfPage())
	case "ctrl+u":
		m.nav.HalfPageUp(groups, m.halfPage())

	// Horizontal navigation
	case "h", "left":
		m.nav.MoveLeft(groups)
	case "l", "right":
		m.nav.MoveRight(groups)

	// Boards
	case "tab":
		m.cycleBoard(1)
	case "shift+tab":
		m.cycleBoard(-1)
	case "B":
		return m, m.overlayStack.Push(overlay.NewBoardForm(m.tr, nil))
	case "E":
		if _, b := m.data(); b != nil {
			return m, m.overlayStack.Push(overlay.NewBoardForm(m.tr, b))
		}
	case "D":
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			m.tr.T(locale.KeyDeleteBoard),
			m.tr.T(locale.KeyConfirmDelete),
			m.tr.T(locale.KeyYes),
			m.tr.T(locale.KeyNo),
			deleteBoardRequest{boardID: m.store.ActiveBoardID()},
		))
	case "N":
		if err := m.store.ToggleNotesCollapsed(m.store.ActiveBoardID()); err != nil {
			m.reportError("toggle notes", err)
		}
	case "H":
		if err := m.store.ToggleNotesHidden(m.store.ActiveBoardID()); err != nil {
			m.reportError("hide notes", err)
		}

	// Tasks
	case "n":
		group, ok := m.nav.GetCurrentGroup(groups)
		if !ok {
			group = domain.GroupFocus
		}
		return m, m.overlayStack.Push(overlay.NewTaskForm(m.tr, group, nil, m.store.Settings().DefaultPriority))
	case "e", "enter":
		if task := m.nav.GetCurrentTask(groups); task != nil {
			group, _ := m.nav.GetCurrentGroup(groups)
			return m, m.overlayStack.Push(overlay.NewTaskForm(m.tr, group, task, m.store.Settings().DefaultPriority))
		}
	case "m":
		m.startMove(groups)
	case "<":
		m.shiftTask(groups, -1)
	case ">":
		m.shiftTask(groups, 1)
	case "K":
		m.reorderTask(groups, -1)
	case "J":
		m.reorderTask(groups, 1)
	case "c":
		m.completeTask(groups)
	case "d":
		m.deleteTask(groups)
	case "u":
		m.undoLatest()

	// Groups
	case " ":
		if group, ok := m.nav.GetCurrentGroup(groups); ok {
			if err := m.store.ToggleGroupCollapsed(m.store.ActiveBoardID(), group); err != nil {
				m.reportError("collapse group", err)
			}
		}
	case "s":
		if group, ok := m.nav.GetCurrentGroup(groups); ok {
			if _, b := m.data(); b != nil {
				return m, m.overlayStack.Push(overlay.NewGroupForm(m.tr, b, group))
			}
		}

	// Other
	case "S":
		return m, m.overlayStack.Push(overlay.NewSettingsOverlay(m.tr, m.store.Settings()))
	case "X":
		report := m.store.RunCleanup()
		m.logger.Info("manual cleanup", "expired", len(report.Expired), "orphaned", len(report.Orphaned))
		m.addToast(types.ToastInfo, m.tr.T(locale.KeyCleaned)+" "+strconv.Itoa(len(report.Expired)+len(report.Orphaned)))
	case "/":
		m.searchOrigin = ""
		if task := m.nav.GetCurrentTask(groups); task != nil {
			m.searchOrigin = task.ID
		}
		return m, m.overlayStack.Push(overlay.NewSearchOverlay(m.tr.T(locale.KeySearch), m.overlayStyles))
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.tr.T(locale.KeyHelp)))
	}

	return m, nil
}

// handleMoveMode processes keyboard input while a task is grabbed
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grab == nil {
		m.mode = types.ModeNormal
		return m, nil
	}

	groups := m.groups()
	switch msg.String() {
	case "h", "left":
		m.grabToGroup(groups, -1)
	case "l", "right":
		m.grabToGroup(groups, 1)
	case "k", "up":
		m.grab.index = clampIndex(m.grab.index-1, m.grabTargetLen(groups))
	case "j", "down":
		m.grab.index = clampIndex(m.grab.index+1, m.grabTargetLen(groups))
	case "enter", "m":
		m.drop()
	case "esc":
		m.grab = nil
		m.mode = types.ModeNormal
	}
	return m, nil
}

// cycleBoard switches to the next or previous board, wrapping around
func (m *Model) cycleBoard(delta int) {
	snap := m.store.Snapshot()
	if len(snap.Boards) < 2 {
		return
	}
	current := 0
	for i, b := range snap.Boards {
		if b.ID == m.store.ActiveBoardID() {
			current = i
		}
	}
	next := (current + delta + len(snap.Boards)) % len(snap.Boards)
	if err := m.store.SetActiveBoard(snap.Boards[next].ID); err != nil {
		m.reportError("switch board", err)
		return
	}
	m.nav.Reset()
}

// taskLabel is the text toasts show for a task
func (m Model) taskLabel(task *domain.Task) string {
	if task.What == "" {
		return m.tr.T(locale.KeyFallbackTask)
	}
	return task.What
}

// startMove grabs the task under the cursor
func (m *Model) startMove(groups []board.Group) {
	task := m.nav.GetCurrentTask(groups)
	if task == nil {
		return
	}
	pos := m.nav.GetPosition(groups)
	m.grab = &grab{
		taskID: task.ID,
		from:   groups[pos.Group].ID,
		to:     groups[pos.Group].ID,
		index:  pos.Task,
	}
	m.mode = types.ModeMove
}

// grabTargetLen is the number of other tasks in the group the grabbed task would land in
func (m Model) grabTargetLen(groups []board.Group) int {
	for _, g := range groups {
		if g.ID == m.grab.to {
			return len(g.Tasks) - 1
		}
	}
	return 0
}

// grabToGroup moves the grab preview to the neighbouring visible group
func (m *Model) grabToGroup(groups []board.Group, delta int) {
	for i, g := range groups {
		if g.ID != m.grab.to {
			continue
		}
		next := i + delta
		if next < 0 || next >= len(groups) {
			return
		}
		m.grab.to = groups[next].ID
		m.grab.index = clampIndex(m.grab.index, len(groups[next].Tasks))
		return
	}
}

// drop commits the previewed move
func (m *Model) drop() {
	g := m.grab
	m.grab = nil
	m.mode = types.ModeNormal

	_, b := m.data()
	if b == nil {
		return
	}
	if from, idx, ok := b.FindTask(g.taskID); ok && from == g.to && idx == g.index {
		return
	}
	if err := m.store.MoveTask(g.taskID, g.from, g.to, g.index); err != nil {
		m.reportError("move task", err)
	}
}

// shiftTask moves the current task to the neighbouring visible group, keeping its row
func (m *Model) shiftTask(groups []board.Group, delta int) {
	task := m.nav.GetCurrentTask(groups)
	if task == nil {
		return
	}
	pos := m.nav.GetPosition(groups)
	next := pos.Group + delta
	if next < 0 || next >= len(groups) {
		return
	}
	if err := m.store.MoveTask(task.ID, groups[pos.Group].ID, groups[next].ID, pos.Task); err != nil {
		m.reportError("move task", err)
		return
	}
	m.nav.SelectTask(task.ID, next)
}

// reorderTask moves the current task up or down within its group
func (m *Model) reorderTask(groups []board.Group, delta int) {
	task := m.nav.GetCurrentTask(groups)
	if task == nil {
		return
	}
	pos := m.nav.GetPosition(groups)
	target := pos.Task + delta
	if target < 0 || target >= len(groups[pos.Group].Tasks) {
		return
	}
	id := groups[pos.Group].ID
	if err := m.store.MoveTask(task.ID, id, id, target); err != nil {
		m.reportError("reorder task", err)
	}
}

// completeTask quick-completes the current task behind an undo window
func (m *Model) completeTask(groups []board.Group) {
	task := m.nav.GetCurrentTask(groups)
	if task == nil {
		return
	}
	pos := m.nav.GetPosition(groups)
	if _, err := m.undo.Complete(m.store.ActiveBoardID(), task.ID, m.taskLabel(task)); err != nil {
		m.reportError("complete task", err)
		return
	}
	m.moveCursorOff(groups, pos)
}

// deleteTask removes the current task behind an undo window
func (m *Model) deleteTask(groups []board.Group) {
	task := m.nav.GetCurrentTask(groups)
	if task == nil {
		return
	}
	pos := m.nav.GetPosition(groups)
	if _, err := m.undo.Delete(m.store.ActiveBoardID(), groups[pos.Group].ID, task.ID, m.taskLabel(task)); err != nil {
		m.reportError("delete task", err)
		return
	}
	m.moveCursorOff(groups, pos)
}

// moveCursorOff selects the neighbour of a task that just left its group
func (m *Model) moveCursorOff(groups []board.Group, pos Position) {
	tasks := groups[pos.Group].Tasks
	switch {
	case pos.Task+1 < len(tasks):
		m.nav.SelectTask(tasks[pos.Task+1].ID, pos.Group)
	case pos.Task > 0:
		m.nav.SelectTask(tasks[pos.Task-1].ID, pos.Group)
	default:
		m.nav.SelectTask("", pos.Group)
	}
}

// undoLatest reverses the newest pending deletion or completion
func (m *Model) undoLatest() {
	entry, err := m.undo.UndoLatest()
	if errors.Is(err, undo.ErrNotPending) {
		return
	}
	if err != nil {
		m.reportError("undo", err)
		return
	}
	if entry.BoardID == m.store.ActiveBoardID() {
		m.nav.JumpToTaskByID(m.groups(), entry.TaskID)
	}
}
