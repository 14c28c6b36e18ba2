package tracker

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sessionlog/internal/session"
)

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd and returns the messages it produces. Commands that do
// not return promptly, such as refresh ticks and cursor blinks, are dropped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)

	go func() {
		ch <- cmd()
	}()

	var msg tea.Msg

	select {
	case msg = <-ch:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	if msg == nil {
		return nil
	}

	// batches and sequences are slices of commands
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice {
		var out []tea.Msg

		for i := range v.Len() {
			if c, ok := v.Index(i).Interface().(tea.Cmd); ok {
				out = append(out, runCmd(c)...)
			}
		}

		return out
	}

	return []tea.Msg{msg}
}

// send delivers msg to the model along with every message produced by the
// commands it returns.
func send(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}

	for steps := 0; len(queue) > 0 && steps < 200; steps++ {
		next := queue[0]
		queue = queue[1:]

		_, cmd := m.Update(next)
		queue = append(queue, runCmd(cmd)...)
	}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func startSession(t *testing.T, m *Model, task, intent string) {
	t.Helper()

	typeText(m, task)
	m.Update(keyPress(tea.KeyTab))
	typeText(m, intent)

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd, "start should schedule a refresh")
	require.Equal(t, session.Active, m.tracker.State())
}

func TestModelStart(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	startSession(t, m, "write report", "finish Q1 draft")

	active, ok := f.tracker.Active()
	require.True(t, ok)
	assert.Equal(t, "write report", active.Task)
	assert.Equal(t, "finish Q1 draft", active.Intent)
	assert.Empty(t, m.task.Value())
	assert.Empty(t, m.intent.Value())
	assert.Contains(t, m.View(), "Working on: write report | 0 min elapsed")
}

func TestModelStartEmptyTask(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	typeText(m, "   ")
	m.Update(keyPress(tea.KeyEnter))

	assert.Equal(t, session.Idle, f.tracker.State())
	assert.ErrorIs(t, m.err, session.ErrValidation)
	assert.True(t, m.task.Focused())
}

func TestModelTick(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	startSession(t, m, "task", "")

	epoch := f.tracker.Epoch()

	f.clock.Advance(3 * time.Minute)

	_, cmd := m.Update(tickMsg{epoch: epoch})
	assert.NotNil(t, cmd, "current tick reschedules itself")
	assert.Contains(t, m.View(), "3 min elapsed")

	_, cmd = m.Update(tickMsg{epoch: epoch - 1})
	assert.Nil(t, cmd, "stale tick stops")

	m.Update(keyPress(tea.KeyEnter))
	require.Equal(t, session.AwaitingOutcome, f.tracker.State())

	_, cmd = m.Update(tickMsg{epoch: epoch})
	assert.Nil(t, cmd, "tick stops once the session leaves the active state")
}

func TestModelCancelEnd(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	startSession(t, m, "task", "")

	epoch := f.tracker.Epoch()

	m.Update(keyPress(tea.KeyEnter))
	require.Equal(t, session.AwaitingOutcome, f.tracker.State())
	require.NotNil(t, m.form)

	_, cmd := m.Update(keyPress(tea.KeyEsc))

	assert.Equal(t, session.Active, f.tracker.State())
	assert.Nil(t, m.form)
	assert.NotNil(t, cmd)
	assert.Greater(t, f.tracker.Epoch(), epoch)
}

func TestModelQuit(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		f := newFixture(t)
		m := NewModel(f.tracker)

		_, cmd := m.Update(keyPress(tea.KeyCtrlC))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("active session needs confirmation", func(t *testing.T) {
		f := newFixture(t)
		m := NewModel(f.tracker)

		startSession(t, m, "task", "")

		_, cmd := m.Update(keyPress(tea.KeyCtrlC))
		assert.Nil(t, cmd)
		assert.True(t, m.confirmQuit)
		assert.Contains(t, m.View(), "Press ctrl+c again")

		_, cmd = m.Update(keyPress(tea.KeyCtrlC))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.NoFileExists(t, f.cfg.System.StatusPath)
	})

	t.Run("other keys reset the confirmation", func(t *testing.T) {
		f := newFixture(t)
		m := NewModel(f.tracker)

		startSession(t, m, "task", "")

		m.Update(keyPress(tea.KeyCtrlC))
		m.Update(keyPress(tea.KeyCtrlL))

		assert.False(t, m.confirmQuit)

		_, cmd := m.Update(keyPress(tea.KeyCtrlC))
		assert.Nil(t, cmd)
	})
}

func TestModelLogTab(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	require.NoError(t, f.tracker.StartRequested("inbox", ""))
	f.clock.Advance(20 * time.Minute)
	f.tracker.EndRequested()

	_, _, err := f.tracker.OutcomeChosen(true)
	require.NoError(t, err)

	m.Update(keyPress(tea.KeyCtrlL))

	view := m.View()
	assert.Contains(t, view, "2024-01-02")
	assert.Contains(t, view, "09:00 (20m) - inbox [finished]")

	m.Update(keyPress(tea.KeyCtrlL))
	assert.NotContains(t, m.View(), "(20m)")
}

func TestModelInterruptedWithOtherReason(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	startSession(t, m, "write report", "finish Q1 draft")

	f.clock.Advance(42 * time.Minute)

	send(m, keyPress(tea.KeyEnter))
	require.Equal(t, session.AwaitingOutcome, f.tracker.State())

	send(m, runeKey('n'))
	require.Equal(t, session.AwaitingInterruptionReason, f.tracker.State())
	require.NotNil(t, m.form)

	// Other is the last choice
	for range len(session.Choices) + 1 {
		send(m, keyPress(tea.KeyDown))
	}

	send(m, keyPress(tea.KeyEnter))
	require.Equal(t, session.AwaitingInterruptionReason, f.tracker.State())

	for _, r := range "meeting" {
		send(m, runeKey(r))
	}

	send(m, keyPress(tea.KeyEnter))

	assert.Equal(t, session.Idle, f.tracker.State())
	assert.Nil(t, m.form)
	assert.NoError(t, m.err)
	assert.Equal(t, "Saved write report.", m.notice)

	var saved []session.Session
	for _, sessions := range f.tracker.Entries() {
		saved = append(saved, sessions...)
	}

	require.Len(t, saved, 1)
	assert.Equal(t, "write report", saved[0].Task)
	assert.Equal(t, "finish Q1 draft", saved[0].Intent)
	assert.Equal(t, session.Interrupted, saved[0].Outcome)
	assert.Equal(t, "meeting", saved[0].Reason)
	assert.Equal(t, 42, saved[0].DurationMin)
}

func TestModelFinished(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.tracker)

	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	startSession(t, m, "inbox", "")

	f.clock.Advance(20 * time.Minute)

	send(m, keyPress(tea.KeyEnter))
	require.Equal(t, session.AwaitingOutcome, f.tracker.State())

	send(m, runeKey('y'))

	assert.Equal(t, session.Idle, f.tracker.State())
	assert.Nil(t, m.form)
	assert.Equal(t, "Saved inbox.", m.notice)
	assert.True(t, m.task.Focused())

	var saved []session.Session
	for _, sessions := range f.tracker.Entries() {
		saved = append(saved, sessions...)
	}

	require.Len(t, saved, 1)
	assert.Equal(t, session.Finished, saved[0].Outcome)
	assert.Empty(t, saved[0].Reason)
	assert.Equal(t, 20, saved[0].DurationMin)
}
