package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
)

// SettingsSubmittedMsg is emitted when the settings overlay is saved
type SettingsSubmittedMsg struct {
	Settings domain.Settings
}

var (
	languages   = []domain.Language{domain.LanguageAuto, domain.LanguageEN, domain.LanguageRU}
	cardViews   = []domain.CardView{domain.CardViewDefault, domain.CardViewCompact}
	cardLayouts = []domain.CardLayout{domain.CardLayoutSingle, domain.CardLayoutMulti}
)

const (
	settingLanguage = iota
	settingPriority
	settingCardView
	settingCardLayout
	settingCount
)

// SettingsOverlay edits the process-wide preferences
type SettingsOverlay struct {
	settings domain.Settings
	cursor   int
	tr       locale.Translator
	styles   *Styles
}

// NewSettingsOverlay opens the settings editor on the current values
func NewSettingsOverlay(tr locale.Translator, settings domain.Settings) *SettingsOverlay {
	return &SettingsOverlay{
		settings: settings,
		tr:       tr,
		styles:   New(),
	}
}

// Init initializes the overlay
func (s *SettingsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *SettingsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch k := keyMsg.String(); k {
	case "esc", "q":
		return s, closeCmd
	case "enter", "ctrl+s":
		return s, emit(SettingsSubmittedMsg{Settings: s.settings})
	case "j", "down", "tab":
		s.cursor = (s.cursor + 1) % settingCount
	case "k", "up", "shift+tab":
		s.cursor = (s.cursor - 1 + settingCount) % settingCount
	default:
		switch s.cursor {
		case settingLanguage:
			s.settings.Language = cycle(languages, s.settings.Language, k)
		case settingPriority:
			s.settings.DefaultPriority = cycle(priorities, s.settings.DefaultPriority, k)
		case settingCardView:
			s.settings.CardView = cycle(cardViews, s.settings.CardView, k)
		case settingCardLayout:
			s.settings.CardLayout = cycle(cardLayouts, s.settings.CardLayout, k)
		}
	}
	return s, nil
}

func (s *SettingsOverlay) row(idx int, label, options string) string {
	style := s.styles.Label
	marker := "  "
	if idx == s.cursor {
		style = s.styles.LabelFocused
		marker = "▶ "
	}
	return marker + style.Render(label) + "\n    " + options + "\n"
}

func languageLabel(l domain.Language) string {
	switch l {
	case domain.LanguageEN:
		return "English"
	case domain.LanguageRU:
		return "Русский"
	default:
		return "Auto"
	}
}

// View renders the overlay
func (s *SettingsOverlay) View() string {
	var b strings.Builder

	b.WriteString(s.row(settingLanguage, s.tr.T(locale.KeyLanguage),
		selector(s.styles, languages, s.settings.Language, languageLabel)))
	b.WriteString(s.row(settingPriority, s.tr.T(locale.KeyDefaultPrio),
		selector(s.styles, priorities, s.settings.DefaultPriority, s.tr.Priority)))
	b.WriteString(s.row(settingCardView, s.tr.T(locale.KeyCardView),
		selector(s.styles, cardViews, s.settings.CardView, func(v domain.CardView) string { return string(v) })))
	b.WriteString(s.row(settingCardLayout, s.tr.T(locale.KeyCardLayout),
		selector(s.styles, cardLayouts, s.settings.CardLayout, func(l domain.CardLayout) string { return string(l) })))

	hints := []string{
		s.styles.MenuKey.Render("j/k") + " ↕",
		s.styles.MenuKey.Render("h/l") + " ±",
		s.styles.MenuKey.Render("Enter") + " " + s.tr.T(locale.KeySave),
		s.styles.MenuKey.Render("Esc") + " " + s.tr.T(locale.KeyCancel),
	}
	b.WriteString(s.styles.Footer.Render(strings.Join(hints, " • ")))
	return b.String()
}

// Title returns the overlay title
func (s *SettingsOverlay) Title() string {
	return s.tr.T(locale.KeySettings)
}

// Size returns the overlay dimensions
func (s *SettingsOverlay) Size() (width, height int) {
	return 56, 16
}
