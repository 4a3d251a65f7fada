package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
	"github.com/riordanpawley/taskmaster/internal/store"
	"github.com/riordanpawley/taskmaster/internal/ui/overlay"
)

// handleTaskSubmitted stores a task from the task form
func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.TaskID == "" {
		task := m.store.NewTask(msg.What)
		task.Why = msg.Why
		task.Who = msg.Who
		task.Deadline = msg.Deadline
		task.Priority = msg.Priority
		if err := m.store.AddTask(task, msg.Group); err != nil {
			m.reportError("add task", err)
			return m, nil
		}
		m.nav.JumpToTaskByID(m.groups(), task.ID)
		return m, nil
	}

	task, ok := m.store.Task(msg.TaskID)
	if !ok {
		// Deleted while the form was open
		m.reportError("update task", fmt.Errorf("%w: %s", domain.ErrTaskNotFound, msg.TaskID))
		return m, nil
	}
	task.What = msg.What
	task.Why = msg.Why
	task.Who = msg.Who
	task.Deadline = msg.Deadline
	task.Priority = msg.Priority
	task.SetStatus(msg.Status, m.store.Now())
	if err := m.store.UpdateTask(task); err != nil {
		m.reportError("update task", err)
	}
	return m, nil
}

// handleBoardSubmitted creates a board or saves the active board's text
func (m Model) handleBoardSubmitted(msg overlay.BoardSubmittedMsg) (tea.Model, tea.Cmd) {
	boardID := msg.BoardID
	if boardID == "" {
		boardID = m.store.CreateBoard(msg.Title)
		m.nav.Reset()
	}
	if err := m.store.UpdateBoard(boardID, msg.Title, msg.Subtitle); err != nil {
		m.reportError("update board", err)
		return m, nil
	}
	if err := m.store.UpdateBoardNotes(boardID, msg.Notes); err != nil {
		m.reportError("update notes", err)
	}
	return m, nil
}

// handleGroupSubmitted applies the group settings form
func (m Model) handleGroupSubmitted(msg overlay.GroupSubmittedMsg) (tea.Model, tea.Cmd) {
	settings := store.GroupSettings{
		WipLimit:               msg.WipLimit,
		CompletedRetentionDays: msg.RetentionDays,
	}
	if err := m.store.UpdateGroupSettings(msg.BoardID, msg.Group, settings); err != nil {
		m.reportError("update group", err)
		return m, nil
	}
	if err := m.store.SetGroupFullWidth(msg.BoardID, msg.Group, msg.FullWidth); err != nil {
		m.reportError("update group", err)
		return m, nil
	}
	if err := m.store.SetGroupHidden(msg.BoardID, msg.Group, msg.Hidden); err != nil {
		m.reportError("hide group", err)
	}
	return m, nil
}

// handleSettingsSubmitted saves the preferences and switches the interface language
func (m Model) handleSettingsSubmitted(msg overlay.SettingsSubmittedMsg) (tea.Model, tea.Cmd) {
	s := msg.Settings
	patch := store.SettingsPatch{
		Language:        &s.Language,
		DefaultPriority: &s.DefaultPriority,
		CardView:        &s.CardView,
		CardLayout:      &s.CardLayout,
	}
	if err := m.store.UpdateSettings(patch); err != nil {
		m.reportError("update settings", err)
		return m, nil
	}
	m.tr = locale.NewTranslator(locale.Detect(s.Language, m.hostLocale))
	return m, nil
}

// handleConfirm acts on a confirmed dialog
func (m Model) handleConfirm(msg overlay.ConfirmResult) (tea.Model, tea.Cmd) {
	if !msg.Confirmed {
		return m, nil
	}
	switch req := msg.Payload.(type) {
	case deleteBoardRequest:
		if err := m.store.DeleteBoard(req.boardID); err != nil {
			m.reportError("delete board", err)
			return m, nil
		}
		m.nav.Reset()
	}
	return m, nil
}
