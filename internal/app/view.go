package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
	"github.com/riordanpawley/taskmaster/internal/services/undo"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
	"github.com/riordanpawley/taskmaster/internal/ui/overlay"
	"github.com/riordanpawley/taskmaster/internal/ui/statusbar"
	"github.com/riordanpawley/taskmaster/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap, b := m.data()
	position := ""
	if len(snap.Boards) > 1 {
		for i, bd := range snap.Boards {
			if bd.ID == m.store.ActiveBoardID() {
				position = fmt.Sprintf("%d/%d", i+1, len(snap.Boards))
			}
		}
	}
	statusBarView := statusbar.New(m.mode, m.width, m.styles).WithInfo(position).Render()

	// The finder replaces the status bar and keeps the board in view
	if search, ok := m.overlayStack.Finder(); ok {
		statusBarView = lipgloss.NewStyle().MaxWidth(m.width).Render(search.View())
	}

	// Modal overlays take the whole screen above the status bar
	if current := m.overlayStack.Modal(); current != nil {
		overlayView := overlay.Render(current, m.overlayStyles, m.width, m.height-1)
		return lipgloss.JoinVertical(lipgloss.Left, overlayView, statusBarView)
	}

	parts := []string{}
	if b != nil {
		tabs := make([]string, len(snap.Boards))
		active := 0
		for i, bd := range snap.Boards {
			tabs[i] = bd.Title
			if bd.ID == b.ID {
				active = i
			}
		}
		parts = append(parts, board.RenderHeader(board.Header{
			Title:          b.Title,
			Subtitle:       b.Subtitle,
			Tabs:           tabs,
			ActiveTab:      active,
			Notes:          b.Notes,
			NotesLabel:     m.tr.T(locale.KeyNotes),
			NotesCollapsed: b.NotesCollapsed,
			NotesHidden:    b.NotesHidden,
		}, m.styles, m.width))
	}

	toastView := toast.New(m.styles).Render(m.visibleToasts(time.Now()), m.width)
	if toastView != "" {
		toastView = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView)
	}

	bodyHeight := m.height - 1 - lipgloss.Height(strings.Join(parts, "\n"))
	if toastView != "" {
		bodyHeight -= lipgloss.Height(toastView)
	}
	if bodyHeight > 0 {
		parts = append(parts, m.renderBoardView(bodyHeight))
	}
	if toastView != "" {
		parts = append(parts, toastView)
	}
	parts = append(parts, statusBarView)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderBoardView renders the groups, scrolled so the cursor's group is on screen
func (m Model) renderBoardView(height int) string {
	groups := m.groups()
	settings := m.store.Settings()
	view := board.View{
		CardView:   settings.CardView,
		CardLayout: settings.CardLayout,
		EmptyText:  m.tr.T(locale.KeyEmptyGroup),
		Now:        m.store.Now(),
	}

	content, cursorLine := board.Render(groups, m.nav.BoardCursor(groups), view, m.styles, m.width)
	return scroll(content, cursorLine, height)
}

// scroll cuts height lines out of content, keeping line focus near the top once it would
// otherwise fall below the middle of the screen
func scroll(content string, focus, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	offset := 0
	if focus >= height/2 {
		offset = focus
	}
	if offset > len(lines)-height {
		offset = len(lines) - height
	}
	return strings.Join(lines[offset:offset+height], "\n")
}

// visibleToasts returns the pending undo windows followed by the regular toasts
func (m Model) visibleToasts(now time.Time) []types.Toast {
	var toasts []types.Toast
	if m.undo != nil {
		for _, e := range m.undo.Visible() {
			toasts = append(toasts, m.undoToast(e, now))
		}
	}
	for _, t := range m.toasts {
		if !t.Expired(now) {
			toasts = append(toasts, t)
		}
	}
	return toasts
}

// undoToast describes a pending undo window with its remaining seconds
func (m Model) undoToast(e undo.Entry, now time.Time) types.Toast {
	level, key := types.ToastWarning, locale.KeyToastDeleted
	if e.Kind == undo.KindComplete {
		level, key = types.ToastSuccess, locale.KeyToastCompleted
	}
	secs := int(math.Ceil(e.ExpiresAt.Sub(now).Seconds()))
	if secs < 0 {
		secs = 0
	}
	return types.Toast{
		Level:   level,
		Message: m.tr.T(key) + " " + e.Label,
		Hint:    fmt.Sprintf("%s · %d%s", m.tr.T(locale.KeyToastUndo), secs, m.tr.T(locale.KeySeconds)),
		Expires: e.ExpiresAt,
	}
}
