package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	info   string
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo returns a copy showing info on the right, e.g. the board position
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// minHintWidth is the room hints keep before the info is dropped
const minHintWidth = 20

// Render renders the status bar as a string. Hints are cut to keep the bar on one line.
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	hints := GetHints(sb.mode)
	content := modeBadge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	// Padding (2) of the bar itself
	avail := sb.width - 2
	info := ""
	if sb.info != "" {
		info = sb.styles.StatusInfo.Render(sb.info)
		if lipgloss.Width(modeBadge)+lipgloss.Width(info)+minHintWidth > avail {
			info = ""
		}
	}

	room := avail
	if info != "" {
		room -= lipgloss.Width(info) + 1
	}
	if room > 0 && lipgloss.Width(content) > room {
		content = ansi.Truncate(content, room, "…")
	}

	if info != "" {
		gap := avail - lipgloss.Width(content) - lipgloss.Width(info)
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, strings.Repeat(" ", gap), info)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
