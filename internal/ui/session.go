package ui

import (
	"fmt"

	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/timeutil"
)

// SessionLine formats a saved session as "HH:MM (Nm) - task [outcome]".
func SessionLine(s *session.Session) string {
	return fmt.Sprintf(
		"%s (%dm) - %s [%s]",
		timeutil.Clock(s.Start),
		s.DurationMin,
		s.Task,
		s.Outcome,
	)
}

// DateHeader formats the heading of a day in the session log.
func DateHeader(dateKey string) string {
	return "=== " + dateKey + " ==="
}
