// Package logging configures the structured logger used throughout
// sessionlog
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Options controls where and how much is logged.
type Options struct {
	// Writer overrides the log file. Mainly useful in tests.
	Writer io.Writer
	Path   string
	Level  slog.Level
}

// New returns a JSON logger that writes to a size-rotated file. Every record
// carries a run attribute that is unique to the process so that the lines of
// one session can be told apart from the next.
func New(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      = opts.Writer
		closer io.Closer = nopCloser{}
	)

	if w == nil {
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}

		w, closer = lj, lj
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return slog.New(h).With(slog.String("run", uuid.NewString())), closer
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
