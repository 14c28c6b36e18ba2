package store

import "github.com/ayoisaiah/sessionlog/internal/apperr"

var (
	// ErrCorruptStore means the durable log exists but could not be parsed.
	ErrCorruptStore = &apperr.Error{
		Message: "the session log at %s is corrupt",
	}

	// ErrPersistence means a session could not be written to the durable
	// log. The session is kept in memory so the save can be retried.
	ErrPersistence = &apperr.Error{
		Message: "saving the session log failed",
	}

	errReadLog = &apperr.Error{
		Message: "reading the session log at %s failed",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is sessionlog already running? Only one instance can use %s at a time",
	}

	errInvalidOutcome = &apperr.Error{
		Message: "unknown session outcome %q",
	}

	errInvalidDateKey = &apperr.Error{
		Message: "invalid date key %q",
	}

	errInvalidBucketBy = &apperr.Error{
		Message: "unknown date key policy %q: must be 'start' or 'save'",
	}
)
