package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskmaster/internal/cleanup"
)

// eventBuffer bounds the events waiting for the UI; further events are dropped
const eventBuffer = 16

// Events carries notifications raised outside the bubbletea loop, such as persistence failures
// and background sweeps, into the model
type Events struct {
	ch chan tea.Msg
}

// NewEvents creates an empty event queue
func NewEvents() *Events {
	return &Events{ch: make(chan tea.Msg, eventBuffer)}
}

// SaveFailed reports a failed write of the board data. It never blocks.
func (e *Events) SaveFailed(err error) {
	e.send(saveFailedMsg{err: err})
}

// Swept reports a background cleanup pass. Empty reports are ignored.
func (e *Events) Swept(report cleanup.Report) {
	if report.Empty() {
		return
	}
	e.send(sweptMsg{report: report})
}

func (e *Events) send(msg tea.Msg) {
	select {
	case e.ch <- msg:
	default:
	}
}

// wait returns a command that delivers the next event
func (e *Events) wait() tea.Cmd {
	return func() tea.Msg {
		return <-e.ch
	}
}

type saveFailedMsg struct {
	err error
}

type sweptMsg struct {
	report cleanup.Report
}
