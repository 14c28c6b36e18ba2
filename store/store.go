// Package store keeps the append-only log of finished sessions, grouped by
// calendar day, and mirrors it to durable storage after every append
package store

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/timeutil"
)

// Backend is the durable storage behind a Store.
type Backend interface {
	// Load returns the stored log, or an empty log if nothing has been saved
	// yet. Content that cannot be parsed yields ErrCorruptStore.
	Load() (Log, error)
	// Save replaces the stored log with l. A failed save must leave the
	// previous content readable.
	Save(l Log) error
	Path() string
	Close() error
}

// BucketBy selects the day a session is filed under.
type BucketBy string

const (
	// BucketByStart files a session under the local date it started on.
	BucketByStart BucketBy = "start"
	// BucketBySave files a session under the local date it was saved on.
	BucketBySave BucketBy = "save"
)

// ParseBucketBy validates a date key policy name.
func ParseBucketBy(s string) (BucketBy, error) {
	switch b := BucketBy(strings.TrimSpace(s)); b {
	case BucketByStart, BucketBySave:
		return b, nil
	case "":
		return BucketByStart, nil
	}

	return "", errInvalidBucketBy.Fmt(s)
}

// Option configures a Store.
type Option func(*Store)

// WithBucketBy sets the date key policy. The default is BucketByStart.
func WithBucketBy(b BucketBy) Option {
	return func(s *Store) {
		s.bucketBy = b
	}
}

// WithClock replaces the time source used for BucketBySave.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the in-memory index of finished sessions. It is not safe for
// concurrent use.
type Store struct {
	backend  Backend
	now      func() time.Time
	days     map[string][]session.Session
	bucketBy BucketBy
	pending  []session.Session
}

// Open loads the log from the backend.
func Open(backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend:  backend,
		now:      time.Now,
		days:     make(map[string][]session.Session),
		bucketBy: BucketByStart,
	}

	for _, opt := range opts {
		opt(s)
	}

	_, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the location of the durable log.
func (s *Store) Path() string {
	return s.backend.Path()
}

// LoadAll reads the durable log and replaces the in-memory index with it.
// The returned map is a copy.
func (s *Store) LoadAll() (map[string][]session.Session, error) {
	l, err := s.backend.Load()
	if err != nil {
		return nil, err
	}

	days := make(map[string][]session.Session, len(l))

	for key, records := range l {
		if !validDateKey(key) {
			return nil, ErrCorruptStore.Fmt(s.backend.Path()).
				Wrap(errInvalidDateKey.Fmt(key))
		}

		sessions := make([]session.Session, 0, len(records))

		for i := range records {
			sess, err := records[i].toSession(key, s.bucketBy)
			if err != nil {
				return nil, ErrCorruptStore.Fmt(s.backend.Path()).Wrap(err)
			}

			sessions = append(sessions, sess)
		}

		days[key] = sessions
	}

	s.days = days

	return s.clone(), nil
}

// DateKey returns the day sess would be filed under if appended now.
func (s *Store) DateKey(sess session.Session) string {
	if s.bucketBy == BucketBySave {
		return timeutil.DateKey(s.now())
	}

	return timeutil.DateKey(sess.Start)
}

// Append files sess under its date key and rewrites the durable log. If the
// write fails, the in-memory index is left as it was before the call and
// sess is kept for Retry.
func (s *Store) Append(sess session.Session) (string, error) {
	key := s.DateKey(sess)

	prev, existed := s.days[key]

	s.days[key] = append(slices.Clip(prev), sess)

	err := s.backend.Save(toLog(s.days))
	if err != nil {
		if existed {
			s.days[key] = prev
		} else {
			delete(s.days, key)
		}

		s.pending = append(s.pending, sess)

		return key, ErrPersistence.Wrap(err)
	}

	return key, nil
}

// Pending returns the sessions whose save failed and has not been retried
// successfully.
func (s *Store) Pending() []session.Session {
	return slices.Clone(s.pending)
}

// Retry attempts to append every pending session in the order they failed.
// It stops at the first failure; the sessions not yet saved stay pending.
func (s *Store) Retry() error {
	pending := s.pending
	s.pending = nil

	for i := range pending {
		_, err := s.Append(pending[i])
		if err != nil {
			s.pending = append(s.pending, pending[i+1:]...)
			return err
		}
	}

	return nil
}

// Entries iterates over the days in the log, most recent first. Sessions
// within a day are in the order they were saved. Each iteration reflects the
// state of the store when it begins.
func (s *Store) Entries() iter.Seq2[string, []session.Session] {
	return s.EntriesBetween("", "")
}

// EntriesBetween is like Entries but skips days before from or after to.
// An empty bound is open.
func (s *Store) EntriesBetween(from, to string) iter.Seq2[string, []session.Session] {
	return func(yield func(string, []session.Session) bool) {
		keys := slices.Collect(maps.Keys(s.days))

		slices.SortFunc(keys, func(a, b string) int {
			return strings.Compare(b, a)
		})

		for _, key := range keys {
			if from != "" && key < from || to != "" && key > to {
				continue
			}

			sessions := s.days[key]
			if len(sessions) == 0 {
				continue
			}

			if !yield(key, slices.Clone(sessions)) {
				return
			}
		}
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) clone() map[string][]session.Session {
	days := make(map[string][]session.Session, len(s.days))

	for key, sessions := range s.days {
		days[key] = slices.Clone(sessions)
	}

	return days
}
