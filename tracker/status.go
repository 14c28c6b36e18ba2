package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/sessionlog/internal/osutil"
	"github.com/ayoisaiah/sessionlog/internal/session"
)

// Status is written to the status file while a session is active so that
// other processes can report on it.
type Status struct {
	Start     time.Time     `json:"start"`
	UpdatedAt time.Time     `json:"updated_at"`
	Task      string        `json:"task"`
	Intent    string        `json:"intent"`
	Interval  time.Duration `json:"interval"`
	// EndRequested is set while the outcome or interruption reason is being
	// asked for. The file is not refreshed in that state and DurationMin
	// holds the fixed duration.
	EndRequested bool `json:"end_requested"`
	DurationMin  int  `json:"duration_min"`
}

// stale reports whether the process that wrote s has stopped refreshing it.
// A status written after the end was requested is never stale since the
// refresh only runs while the session is active.
func (s *Status) stale(now time.Time) bool {
	if s.EndRequested {
		return false
	}

	interval := s.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	return now.Sub(s.UpdatedAt) > 2*interval
}

func (t *Tracker) writeStatus() {
	path := t.opts.System.StatusPath
	if path == "" {
		return
	}

	active, ok := t.machine.Active()
	if !ok {
		return
	}

	s := Status{
		Task:      active.Task,
		Intent:    active.Intent,
		Start:     active.Start,
		UpdatedAt: t.now(),
		Interval:  t.RefreshInterval(),
	}

	if t.machine.State() != session.Active {
		s.EndRequested = true
		s.DurationMin = t.machine.ElapsedMinutes()
	}

	err := writeStatusFile(path, &s)
	if err != nil {
		t.log.Warn("writing status file failed", "error", err)
	}
}

func (t *Tracker) removeStatus() {
	path := t.opts.System.StatusPath
	if path == "" {
		return
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.log.Warn("removing status file failed", "error", err)
	}
}

func writeStatusFile(path string, s *Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

// ReadStatus returns the status of the session tracked by a running
// instance. It returns nil if no session is active or the status file was
// left behind by an instance that is no longer running.
func ReadStatus(path string, now time.Time) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, errReadStatus.Fmt(path).Wrap(err)
	}

	if s.stale(now) {
		return nil, nil
	}

	return &s, nil
}

// ReportStatus prints a one line summary of the session tracked by a running
// instance to w.
func ReportStatus(w io.Writer, path string, now time.Time) error {
	s, err := ReadStatus(path, now)
	if err != nil {
		return err
	}

	if s == nil {
		_, err = fmt.Fprintln(w, "No active session")
		return err
	}

	mins := session.Minutes(s.Start, now)
	if s.EndRequested {
		mins = s.DurationMin
	}

	_, err = fmt.Fprintf(
		w,
		"Working on: %s | %d min elapsed\n",
		s.Task,
		mins,
	)

	return err
}
