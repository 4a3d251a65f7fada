package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskmaster/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	BoardTitle    lipgloss.Style
	BoardSubtitle lipgloss.Style
	BoardTabs     lipgloss.Style
	BoardTab      lipgloss.Style
	Notes         lipgloss.Style

	// Groups
	Group             lipgloss.Style
	GroupActive       lipgloss.Style
	GroupHeader       lipgloss.Style
	GroupHeaderActive lipgloss.Style
	GroupCount        lipgloss.Style
	GroupOverWip      lipgloss.Style
	GroupEmpty        lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	TaskTitle  lipgloss.Style
	TaskDetail lipgloss.Style
	Deadline   lipgloss.Style
	Overdue    lipgloss.Style

	// Badges
	PriorityBadge func(priority domain.Priority) lipgloss.Style
	StatusBadge   func(status domain.Status) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		BoardTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		BoardSubtitle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Italic(true),

		BoardTabs: lipgloss.NewStyle().
			Foreground(Overlay1),

		BoardTab: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Notes: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Surface2).
			Foreground(Subtext1).
			PaddingLeft(1),

		Group: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		GroupActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		GroupHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		GroupHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		GroupCount: lipgloss.NewStyle().
			Foreground(Overlay1),

		GroupOverWip: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		GroupEmpty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskDetail: lipgloss.NewStyle().
			Foreground(Subtext0),

		Deadline: lipgloss.NewStyle().
			Foreground(Sky),

		Overdue: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		PriorityBadge: func(priority domain.Priority) lipgloss.Style {
			color, ok := PriorityColors[priority]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		StatusBadge: func(status domain.Status) lipgloss.Style {
			color, ok := StatusColors[status]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(color)
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// GroupAccent returns the header style of a group
func (s *Styles) GroupAccent(id domain.GroupID, active bool) lipgloss.Style {
	if active {
		return s.GroupHeaderActive
	}
	if color, ok := GroupColors[id]; ok {
		return s.GroupHeader.Foreground(color)
	}
	return s.GroupHeader
}
