package session

import (
	"fmt"

	"github.com/ayoisaiah/sessionlog/internal/apperr"
)

var ErrValidation = &apperr.Error{
	Message: "you need to actually be doing something: task cannot be empty",
}

// TransitionError describes an operation invoked in a state that does not
// allow it. The machine panics with this value since it can only result from
// a caller bug.
type TransitionError struct {
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("session: %s is not allowed in state %s", e.Op, e.State)
}
