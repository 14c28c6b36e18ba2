// Package tracker connects user interface events to the session state
// machine and the session store, and provides the interactive terminal
// interface built on top of them
package tracker

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/ayoisaiah/sessionlog/internal/config"
	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/store"
)

// Tracker owns the session state for one running instance of the
// application. Every method must be called from the same goroutine.
type Tracker struct {
	machine *session.Machine
	store   *store.Store
	opts    *config.Config
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the time source of the tracker and its state machine.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLogger sets the logger used to record session events.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

// New returns an idle tracker that saves finished sessions to st.
func New(st *store.Store, cfg *config.Config, opts ...Option) *Tracker {
	t := &Tracker{
		store: st,
		opts:  cfg,
		log:   slog.Default(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.machine = session.NewMachine(session.WithClock(t.now))

	return t
}

// State returns the state of the current session.
func (t *Tracker) State() session.State {
	return t.machine.State()
}

// Status describes the current session for display.
func (t *Tracker) Status() session.Status {
	return t.machine.Status()
}

// Active returns the session being tracked, if any.
func (t *Tracker) Active() (session.ActiveSession, bool) {
	return t.machine.Active()
}

// Epoch identifies the current active period of the state machine.
func (t *Tracker) Epoch() uint64 {
	return t.machine.Epoch()
}

// RefreshInterval is the period of the elapsed time display.
func (t *Tracker) RefreshInterval() time.Duration {
	return t.opts.Display.RefreshInterval
}

// StartRequested starts tracking task. An empty task is rejected with
// session.ErrValidation and nothing changes.
func (t *Tracker) StartRequested(task, intent string) error {
	err := t.machine.Start(task, intent)
	if err != nil {
		return err
	}

	active, _ := t.machine.Active()

	t.log.Info(
		"session started",
		slog.String("task", active.Task),
		slog.Time("start", active.Start),
	)

	t.writeStatus()

	return nil
}

// EndRequested fixes the end of the active session. The outcome must be
// supplied next.
func (t *Tracker) EndRequested() {
	t.machine.RequestEnd()

	t.log.Info(
		"session end requested",
		slog.Int("duration_min", t.machine.ElapsedMinutes()),
	)

	t.writeStatus()
}

// OutcomeChosen records whether the session was finished. A finished session
// is saved and returned with done set to true. For an interrupted session
// done is false and InterruptionReasonChosen must be called next.
func (t *Tracker) OutcomeChosen(finished bool) (sess session.Session, done bool, err error) {
	sess, done = t.machine.SupplyOutcome(finished)
	if !done {
		return sess, false, nil
	}

	return sess, true, t.save(sess)
}

// InterruptionReasonChosen completes an interrupted session with the reason
// derived from choice and freeText, then saves it.
func (t *Tracker) InterruptionReasonChosen(
	choice session.Choice,
	freeText string,
) (session.Session, error) {
	sess := t.machine.SupplyInterruptionReason(session.Resolve(choice, freeText))

	return sess, t.save(sess)
}

// EndCancelled resumes the active session after the outcome or reason
// prompt was dismissed.
func (t *Tracker) EndCancelled() {
	t.machine.CancelEnd()

	t.log.Info("session end cancelled")

	t.writeStatus()
}

// Tick reports whether a refresh scheduled during the given epoch is
// still current. Refreshes stop once the session leaves the active state.
func (t *Tracker) Tick(epoch uint64) bool {
	if t.machine.State() != session.Active || t.machine.Epoch() != epoch {
		return false
	}

	t.writeStatus()

	return true
}

// Pending returns the sessions that could not be saved.
func (t *Tracker) Pending() []session.Session {
	return t.store.Pending()
}

// Retry attempts to save the sessions that previously failed to persist.
func (t *Tracker) Retry() error {
	err := t.store.Retry()
	if err != nil {
		t.log.Error("retrying failed saves", slog.Any("error", err))
		return err
	}

	t.log.Info("pending sessions saved")

	return nil
}

// Entries iterates over the saved sessions by day, most recent first.
func (t *Tracker) Entries() iter.Seq2[string, []session.Session] {
	return t.store.Entries()
}

// save appends sess to the store and runs the post-save actions. A failed
// save leaves sess pending in the store.
func (t *Tracker) save(sess session.Session) error {
	t.removeStatus()

	key, err := t.store.Append(sess)
	if err != nil {
		t.log.Error(
			"saving session failed",
			slog.String("task", sess.Task),
			slog.String("date_key", key),
			slog.Any("error", err),
		)

		return err
	}

	t.log.Info(
		"session saved",
		slog.String("task", sess.Task),
		slog.String("date_key", key),
		slog.String("outcome", string(sess.Outcome)),
		slog.Int("duration_min", sess.DurationMin),
	)

	t.notify(sess)

	err = t.runSessionCmd(context.Background(), t.opts.Settings.Cmd)
	if err != nil {
		t.log.Warn("session command failed", slog.Any("error", err))
	}

	return nil
}
