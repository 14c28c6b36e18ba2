package session

import (
	"fmt"
	"strings"
	"time"
)

// State is a stage in the lifecycle of a tracked session.
type State int

const (
	Idle State = iota
	Active
	// AwaitingOutcome means the end was requested but the user has not
	// said whether the session was finished.
	AwaitingOutcome
	// AwaitingInterruptionReason means the session was interrupted and the
	// reason has not been supplied yet.
	AwaitingInterruptionReason
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case AwaitingOutcome:
		return "awaiting outcome"
	case AwaitingInterruptionReason:
		return "awaiting interruption reason"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

const noActiveSession = "No active session"

// Status is the information shown to the user about the current session.
type Status struct {
	Task           string
	ElapsedMinutes int
	Active         bool
}

func (s Status) String() string {
	if !s.Active {
		return noActiveSession
	}

	return fmt.Sprintf(
		"Working on: %s | %d min elapsed",
		s.Task,
		s.ElapsedMinutes,
	)
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock replaces the time source of the machine.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		m.now = now
	}
}

// Machine tracks at most one active session. It is not safe for concurrent
// use: every transition is expected to happen on the caller's event loop.
type Machine struct {
	now         func() time.Time
	end         time.Time
	active      ActiveSession
	state       State
	durationMin int
	epoch       uint64
}

// NewMachine returns an idle machine.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		now:   time.Now,
		state: Idle,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Epoch identifies the current Active period. It changes every time the
// machine enters Active so that work scheduled for an earlier period can
// recognise that it is stale.
func (m *Machine) Epoch() uint64 {
	return m.epoch
}

// Active returns the session being tracked, if any.
func (m *Machine) Active() (ActiveSession, bool) {
	if m.state == Idle {
		return ActiveSession{}, false
	}

	return m.active, true
}

func (m *Machine) must(op string, allowed ...State) {
	for _, s := range allowed {
		if m.state == s {
			return
		}
	}

	panic(&TransitionError{Op: op, State: m.state})
}

// Start begins tracking a new session. Task and intent are trimmed and the
// task must not be empty.
func (m *Machine) Start(task, intent string) error {
	m.must("start", Idle)

	task = strings.TrimSpace(task)
	if task == "" {
		return ErrValidation
	}

	m.active = ActiveSession{
		Task:   task,
		Intent: strings.TrimSpace(intent),
		Start:  m.now(),
	}
	m.enterActive()

	return nil
}

// RequestEnd captures the end time of the active session and fixes its
// duration. The machine then waits for the outcome.
func (m *Machine) RequestEnd() {
	m.must("request end", Active)

	end := m.now()
	if end.Before(m.active.Start) {
		end = m.active.Start
	}

	m.end = end
	m.durationMin = Minutes(m.active.Start, end)
	m.state = AwaitingOutcome
}

// SupplyOutcome records whether the session was finished. A finished session
// is returned immediately with ok set to true. Otherwise the machine waits
// for the interruption reason and ok is false.
func (m *Machine) SupplyOutcome(finished bool) (sess Session, ok bool) {
	m.must("supply outcome", AwaitingOutcome)

	if !finished {
		m.state = AwaitingInterruptionReason
		return Session{}, false
	}

	return m.emit(Finished, ""), true
}

// SupplyInterruptionReason completes an interrupted session with the given
// reason, which may be empty.
func (m *Machine) SupplyInterruptionReason(reason string) Session {
	m.must("supply interruption reason", AwaitingInterruptionReason)

	return m.emit(Interrupted, strings.TrimSpace(reason))
}

// CancelEnd abandons an end request and resumes the active session as if the
// end had never been requested. No record is produced.
func (m *Machine) CancelEnd() {
	m.must("cancel end", AwaitingOutcome, AwaitingInterruptionReason)

	m.end = time.Time{}
	m.durationMin = 0
	m.enterActive()
}

// ElapsedMinutes returns the minutes elapsed in the active session. Once an
// end has been requested it returns the fixed duration. It is zero when idle.
func (m *Machine) ElapsedMinutes() int {
	switch m.state {
	case Active:
		return Minutes(m.active.Start, m.now())
	case AwaitingOutcome, AwaitingInterruptionReason:
		return m.durationMin
	}

	return 0
}

// Status describes the current session for display.
func (m *Machine) Status() Status {
	if m.state == Idle {
		return Status{}
	}

	return Status{
		Task:           m.active.Task,
		ElapsedMinutes: m.ElapsedMinutes(),
		Active:         true,
	}
}

func (m *Machine) enterActive() {
	m.state = Active
	m.epoch++
}

func (m *Machine) emit(outcome Outcome, reason string) Session {
	sess := Session{
		Task:        m.active.Task,
		Intent:      m.active.Intent,
		Start:       m.active.Start,
		End:         m.end,
		DurationMin: m.durationMin,
		Outcome:     outcome,
		Reason:      reason,
	}

	m.active = ActiveSession{}
	m.end = time.Time{}
	m.durationMin = 0
	m.state = Idle

	return sess
}
