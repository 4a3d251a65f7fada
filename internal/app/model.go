// Package app wires the task board store, undo windows and UI components into a bubbletea
// program.
package app

import (
	"log/slog"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/config"
	"github.com/riordanpawley/taskmaster/internal/domain"
	"github.com/riordanpawley/taskmaster/internal/services/locale"
	"github.com/riordanpawley/taskmaster/internal/services/navigation"
	"github.com/riordanpawley/taskmaster/internal/services/undo"
	"github.com/riordanpawley/taskmaster/internal/store"
	"github.com/riordanpawley/taskmaster/internal/types"
	"github.com/riordanpawley/taskmaster/internal/ui/board"
	"github.com/riordanpawley/taskmaster/internal/ui/overlay"
	"github.com/riordanpawley/taskmaster/internal/ui/styles"
	"github.com/riordanpawley/taskmaster/internal/ui/toast"
)

// Toast durations by severity
const (
	toastShort = 3 * time.Second
	toastLong  = 8 * time.Second
)

// tickInterval drives toast expiry and the undo countdown
const tickInterval = time.Second

// Position is a computed cursor position in the visible groups
type Position = navigation.Position

// grab is a task picked up in move mode. The move is only previewed until it is dropped.
type grab struct {
	taskID string
	from   domain.GroupID
	to     domain.GroupID
	index  int
}

// Model is the main application state
type Model struct {
	store  *store.Store
	undo   *undo.Manager
	events *Events

	// Navigation (cursor follows task IDs)
	nav  *navigation.Service
	mode types.Mode
	grab *grab

	// searchOrigin is the task selected when the finder opened
	searchOrigin string

	// UI state
	overlayStack  *overlay.Stack
	overlayStyles *overlay.Styles
	toasts        []types.Toast

	// Terminal size
	width  int
	height int

	styles     *styles.Styles
	tr         locale.Translator
	hostLocale string

	config *config.Config
	logger *slog.Logger
}

// Options holds the dependencies of the model
type Options struct {
	Store  *store.Store
	Undo   *undo.Manager
	Events *Events // Optional; delivers save failures and sweep reports
	Config *config.Config
	Logger *slog.Logger
}

// New creates a new Model
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	events := opts.Events
	if events == nil {
		events = NewEvents()
	}

	host := locale.HostLocale(cfg.Locale)
	return Model{
		store:         opts.Store,
		undo:          opts.Undo,
		events:        events,
		nav:           navigation.NewService(),
		mode:          types.ModeNormal,
		overlayStack:  overlay.NewStack(),
		overlayStyles: overlay.New(),
		styles:        styles.New(),
		tr:            locale.NewTranslator(locale.Detect(opts.Store.Settings().Language, host)),
		hostLocale:    host,
		config:        cfg,
		logger:        logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.events.wait(),
		tickEvery(tickInterval),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case overlay.BoardSubmittedMsg:
		return m.handleBoardSubmitted(msg)

	case overlay.GroupSubmittedMsg:
		return m.handleGroupSubmitted(msg)

	case overlay.SettingsSubmittedMsg:
		return m.handleSettingsSubmitted(msg)

	case overlay.ConfirmResult:
		return m.handleConfirm(msg)

	case overlay.SearchMsg:
		return m.handleSearch(msg)

	case saveFailedMsg:
		m.addToast(types.ToastError, m.tr.T(locale.KeySaveFailed)+" "+msg.err.Error())
		return m, m.events.wait()

	case sweptMsg:
		if n := len(msg.report.Expired); n > 0 {
			m.addToast(types.ToastInfo, m.tr.T(locale.KeyCleaned)+" "+strconv.Itoa(n))
		}
		return m, m.events.wait()

	case tickMsg:
		m.toasts = toast.Prune(m.toasts, time.Time(msg))
		return m, tickEvery(tickInterval)
	}

	// Text inputs blink and emit their own messages
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// data returns a snapshot of the aggregate together with its active board
func (m Model) data() (*domain.PluginData, *domain.Board) {
	snap := m.store.Snapshot()
	return snap, snap.Board(m.store.ActiveBoardID())
}

// groups builds the visible groups of the active board, applying a move preview when a task is
// grabbed
func (m Model) groups() []board.Group {
	snap, b := m.data()
	groups := board.BuildGroups(b, snap.Tasks, m.tr.Group)
	if m.grab != nil {
		groups = previewMove(groups, *m.grab)
	}
	return groups
}

// previewMove relocates the grabbed task inside groups. The target group is shown expanded so the
// task stays visible.
func previewMove(groups []board.Group, g grab) []board.Group {
	var (
		task  domain.Task
		found bool
	)
	for i := range groups {
		for j, t := range groups[i].Tasks {
			if t.ID == g.taskID {
				task, found = t, true
				groups[i].Tasks = append(append([]domain.Task(nil), groups[i].Tasks[:j]...), groups[i].Tasks[j+1:]...)
				break
			}
		}
	}
	if !found {
		return groups
	}
	for i := range groups {
		if groups[i].ID != g.to {
			continue
		}
		idx := clampIndex(g.index, len(groups[i].Tasks))
		tasks := append([]domain.Task(nil), groups[i].Tasks[:idx]...)
		tasks = append(tasks, task)
		groups[i].Tasks = append(tasks, groups[i].Tasks[idx:]...)
		groups[i].Collapsed = false
	}
	return groups
}

func clampIndex(idx, n int) int {
	if idx > n {
		idx = n
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level types.ToastLevel, message string) {
	d := toastShort
	if level == types.ToastError {
		d = toastLong
	}
	m.toasts = append(m.toasts, types.Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(d),
	})
}

// reportError logs err and shows it as an error toast
func (m *Model) reportError(action string, err error) {
	m.logger.Warn(action+" failed", "error", err)
	m.addToast(types.ToastError, err.Error())
}

// halfPage calculates half-page scroll distance based on terminal height
func (m Model) halfPage() int {
	// Approximate: subtract status bar (1) and header (2), divide by card height (~4 lines)
	visibleRows := m.height - 3
	if visibleRows < 4 {
		return 1
	}
	half := visibleRows / 4 / 2
	if half < 1 {
		return 1
	}
	return half
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
