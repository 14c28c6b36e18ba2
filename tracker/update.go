package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/sessionlog/internal/session"
)

// tickMsg refreshes the elapsed time of the session that was active when it
// was scheduled.
type tickMsg struct {
	epoch uint64
}

func (m *Model) tick() tea.Cmd {
	epoch := m.tracker.Epoch()

	return tea.Tick(m.tracker.RefreshInterval(), func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.log.Enabled(context.Background(), slog.LevelDebug) {
		m.log.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		if m.tracker.Tick(msg.epoch) {
			return m, m.tick()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m.handleQuit()
		}

		if m.confirmQuit {
			m.confirmQuit = false
			m.notice = ""
		}

		if key.Matches(msg, m.keys.history) && m.form == nil {
			m.toggleTab()
			return m, nil
		}
	}

	switch m.tracker.State() {
	case session.Idle:
		return m.updateIdle(msg)
	case session.Active:
		return m.updateActive(msg)
	case session.AwaitingOutcome, session.AwaitingInterruptionReason:
		return m.updatePrompt(msg)
	}

	return m, nil
}

func (m *Model) toggleTab() {
	if m.tab == trackTab {
		m.tab = logTab
	} else {
		m.tab = trackTab
	}
}

// handleQuit exits straight away when no session is in progress. Otherwise
// the first request only warns that the session will be discarded.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.tracker.State() == session.Idle || m.confirmQuit {
		if active, ok := m.tracker.Active(); ok {
			m.log.Warn(
				"session discarded on quit",
				slog.String("task", active.Task),
				slog.Time("start", active.Start),
			)
		}

		if n := len(m.tracker.Pending()); n > 0 {
			m.log.Warn("quitting with unsaved sessions", slog.Int("count", n))
		}

		m.tracker.removeStatus()

		return m, tea.Quit
	}

	m.confirmQuit = true
	m.notice = "A session is in progress. Press ctrl+c again to discard it and quit."

	return m, nil
}

func (m *Model) updateIdle(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && m.tab == trackTab {
		switch {
		case key.Matches(keyMsg, m.keys.next):
			return m, m.switchField()
		case key.Matches(keyMsg, m.keys.retry):
			m.retry()
			return m, nil
		case key.Matches(keyMsg, m.keys.start):
			return m.start()
		}
	}

	if m.tab != trackTab {
		return m, nil
	}

	var cmd tea.Cmd
	if m.task.Focused() {
		m.task, cmd = m.task.Update(msg)
	} else {
		m.intent, cmd = m.intent.Update(msg)
	}

	return m, cmd
}

func (m *Model) switchField() tea.Cmd {
	if m.task.Focused() {
		m.task.Blur()
		return m.intent.Focus()
	}

	m.intent.Blur()

	return m.task.Focus()
}

func (m *Model) start() (tea.Model, tea.Cmd) {
	err := m.tracker.StartRequested(m.task.Value(), m.intent.Value())
	if err != nil {
		m.err = err

		if errors.Is(err, session.ErrValidation) {
			m.intent.Blur()
			return m, m.task.Focus()
		}

		return m, nil
	}

	m.err = nil
	m.notice = ""
	m.task.Reset()
	m.intent.Reset()
	m.task.Blur()
	m.intent.Blur()

	return m, m.tick()
}

func (m *Model) retry() {
	if len(m.tracker.Pending()) == 0 {
		return
	}

	err := m.tracker.Retry()
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.notice = "Unsaved sessions were saved."
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.tab != trackTab || !key.Matches(keyMsg, m.keys.end) {
		return m, nil
	}

	m.tracker.EndRequested()
	m.form = m.outcomeForm()

	return m, m.form.Init()
}

// updatePrompt forwards messages to the outcome or reason form and turns a
// completed form into the matching Tracker event.
func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok &&
		key.Matches(keyMsg, m.keys.cancel) {
		return m.cancelEnd()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.cancelEnd()
	case huh.StateCompleted:
		return m.completePrompt()
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) cancelEnd() (tea.Model, tea.Cmd) {
	m.form = nil
	m.tracker.EndCancelled()

	return m, m.tick()
}

func (m *Model) completePrompt() (tea.Model, tea.Cmd) {
	m.form = nil

	if m.tracker.State() == session.AwaitingOutcome {
		sess, done, err := m.tracker.OutcomeChosen(m.finished)
		if !done {
			m.form = m.reasonForm()
			return m, m.form.Init()
		}

		m.saved(sess, err)

		return m, m.task.Focus()
	}

	sess, err := m.tracker.InterruptionReasonChosen(m.choice, m.freeText)
	m.saved(sess, err)

	return m, m.task.Focus()
}

func (m *Model) saved(sess session.Session, err error) {
	if err != nil {
		m.err = err
		m.notice = ""

		return
	}

	m.err = nil
	m.notice = "Saved " + sess.Task + "."
}
