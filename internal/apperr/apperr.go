// Package apperr defines the error type used across sessionlog
package apperr

import "fmt"

// Error is an application error. Package-level values act as templates:
// Fmt and Wrap return copies that still match the template with errors.Is.
type Error struct {
	Cause   error
	kind    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same template as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

// Fmt formats the message of the template with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	ne := *e
	ne.kind = e.root()
	ne.Message = fmt.Sprintf(e.Message, args...)

	return &ne
}

// Wrap attaches the underlying cause to a copy of the error.
func (e *Error) Wrap(err error) *Error {
	ne := *e
	ne.kind = e.root()
	ne.Cause = err

	return &ne
}

func (e *Error) root() *Error {
	if e.kind != nil {
		return e.kind
	}

	return e
}
