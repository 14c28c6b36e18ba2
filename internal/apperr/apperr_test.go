package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/sessionlog/internal/apperr"
)

var (
	errTemplate = &apperr.Error{Message: "reading %s failed"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt("sessions.json")

	assert.Equal(t, "reading sessions.json failed", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, errOther)
	assert.Equal(t, "reading %s failed", errTemplate.Message)
}

func TestWrapExposesCause(t *testing.T) {
	err := errTemplate.Fmt("log").Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading log failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var target *apperr.Error
	assert.True(t, errors.As(err, &target))
}
