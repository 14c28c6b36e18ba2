package session_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sessionlog/internal/session"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newMachine(t *testing.T) (*session.Machine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{
		t: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local),
	}

	return session.NewMachine(session.WithClock(clock.Now)), clock
}

func TestStart(t *testing.T) {
	cases := []struct {
		Name       string
		Task       string
		Intent     string
		WantTask   string
		WantIntent string
	}{
		{
			Name:       "plain task and intent",
			Task:       "write report",
			Intent:     "finish Q1 draft",
			WantTask:   "write report",
			WantIntent: "finish Q1 draft",
		},
		{
			Name:     "task is trimmed",
			Task:     "  review PR \t",
			WantTask: "review PR",
		},
		{
			Name:       "intent is trimmed",
			Task:       "read",
			Intent:     "  chapter 3 \n",
			WantTask:   "read",
			WantIntent: "chapter 3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			m, clock := newMachine(t)

			require.NoError(t, m.Start(tc.Task, tc.Intent))

			assert.Equal(t, session.Active, m.State())

			active, ok := m.Active()
			require.True(t, ok)

			want := session.ActiveSession{
				Task:   tc.WantTask,
				Intent: tc.WantIntent,
				Start:  clock.Now(),
			}

			if diff := cmp.Diff(want, active); diff != "" {
				t.Errorf("active session mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStartRejectsEmptyTask(t *testing.T) {
	for _, task := range []string{"", "   ", "\t\n"} {
		m, _ := newMachine(t)

		err := m.Start(task, "intent")

		assert.ErrorIs(t, err, session.ErrValidation)
		assert.Equal(t, session.Idle, m.State())

		_, ok := m.Active()
		assert.False(t, ok)
	}
}

func TestDurationFixedAtRequestEnd(t *testing.T) {
	m, clock := newMachine(t)

	require.NoError(t, m.Start("task", ""))

	clock.Advance(42*time.Minute + 59*time.Second)
	m.RequestEnd()

	assert.Equal(t, session.AwaitingOutcome, m.State())
	assert.Equal(t, 42, m.ElapsedMinutes())

	clock.Advance(3 * time.Hour)

	sess, ok := m.SupplyOutcome(true)
	require.True(t, ok)

	assert.Equal(t, 42, sess.DurationMin)
	assert.Equal(t, sess.Start.Add(42*time.Minute+59*time.Second), sess.End)
}

func TestSupplyOutcomeFinished(t *testing.T) {
	m, clock := newMachine(t)

	require.NoError(t, m.Start("task", "intent"))
	clock.Advance(10 * time.Minute)
	m.RequestEnd()

	sess, ok := m.SupplyOutcome(true)
	require.True(t, ok)

	assert.Equal(t, session.Finished, sess.Outcome)
	assert.Empty(t, sess.Reason)
	assert.Equal(t, session.Idle, m.State())
}

func TestSupplyInterruptionReason(t *testing.T) {
	m, clock := newMachine(t)

	require.NoError(t, m.Start("task", ""))
	clock.Advance(5 * time.Minute)
	m.RequestEnd()

	sess, ok := m.SupplyOutcome(false)
	require.False(t, ok)
	assert.Equal(t, session.Session{}, sess)
	assert.Equal(t, session.AwaitingInterruptionReason, m.State())

	sess = m.SupplyInterruptionReason(session.Resolve(session.Distracted, ""))

	assert.Equal(t, session.Interrupted, sess.Outcome)
	assert.Equal(t, "Distracted", sess.Reason)
	assert.Equal(t, 5, sess.DurationMin)
	assert.Equal(t, session.Idle, m.State())
}

func TestInterruptionReasonIsTrimmed(t *testing.T) {
	m, _ := newMachine(t)

	require.NoError(t, m.Start("task", ""))
	m.RequestEnd()
	m.SupplyOutcome(false)

	sess := m.SupplyInterruptionReason("  phone call  ")

	assert.Equal(t, "phone call", sess.Reason)
}

func TestCancelEnd(t *testing.T) {
	for _, interrupted := range []bool{false, true} {
		m, clock := newMachine(t)

		require.NoError(t, m.Start("task", "intent"))
		start := clock.Now()
		epoch := m.Epoch()

		clock.Advance(7 * time.Minute)
		m.RequestEnd()

		if interrupted {
			m.SupplyOutcome(false)
		}

		m.CancelEnd()

		assert.Equal(t, session.Active, m.State())
		assert.Greater(t, m.Epoch(), epoch)

		active, ok := m.Active()
		require.True(t, ok)
		assert.Equal(t, start, active.Start)

		clock.Advance(8 * time.Minute)
		assert.Equal(t, 15, m.ElapsedMinutes())

		m.RequestEnd()

		sess, ok := m.SupplyOutcome(true)
		require.True(t, ok)
		assert.Equal(t, 15, sess.DurationMin)
	}
}

func TestClockGoingBackwards(t *testing.T) {
	m, clock := newMachine(t)

	require.NoError(t, m.Start("task", ""))
	clock.Advance(-time.Hour)
	m.RequestEnd()

	sess, _ := m.SupplyOutcome(true)

	assert.Equal(t, sess.Start, sess.End)
	assert.Zero(t, sess.DurationMin)
}

func TestInvalidTransitionsPanic(t *testing.T) {
	cases := []struct {
		Name string
		Prep func(m *session.Machine)
		Op   func(m *session.Machine)
	}{
		{
			Name: "start while active",
			Prep: func(m *session.Machine) { _ = m.Start("a", "") },
			Op:   func(m *session.Machine) { _ = m.Start("b", "") },
		},
		{
			Name: "request end while idle",
			Prep: func(_ *session.Machine) {},
			Op:   func(m *session.Machine) { m.RequestEnd() },
		},
		{
			Name: "supply outcome while active",
			Prep: func(m *session.Machine) { _ = m.Start("a", "") },
			Op:   func(m *session.Machine) { m.SupplyOutcome(true) },
		},
		{
			Name: "supply reason while awaiting outcome",
			Prep: func(m *session.Machine) {
				_ = m.Start("a", "")
				m.RequestEnd()
			},
			Op: func(m *session.Machine) { m.SupplyInterruptionReason("x") },
		},
		{
			Name: "double save",
			Prep: func(m *session.Machine) {
				_ = m.Start("a", "")
				m.RequestEnd()
				m.SupplyOutcome(true)
			},
			Op: func(m *session.Machine) { m.SupplyOutcome(true) },
		},
		{
			Name: "cancel end while active",
			Prep: func(m *session.Machine) { _ = m.Start("a", "") },
			Op:   func(m *session.Machine) { m.CancelEnd() },
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			m, _ := newMachine(t)
			tc.Prep(m)

			before := m.State()

			defer func() {
				r := recover()
				require.NotNil(t, r)

				err, ok := r.(*session.TransitionError)
				require.True(t, ok)
				assert.Equal(t, before, err.State)
			}()

			tc.Op(m)
		})
	}
}

func TestStatus(t *testing.T) {
	m, clock := newMachine(t)

	assert.Equal(t, "No active session", m.Status().String())

	require.NoError(t, m.Start("write report", ""))
	clock.Advance(3*time.Minute + 30*time.Second)

	assert.Equal(t, "Working on: write report | 3 min elapsed", m.Status().String())
}
