package store

import (
	"time"

	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/timeutil"
)

// Record is the durable form of a session. Start and End only carry the
// wall clock time; the date comes from the key the record is stored under.
type Record struct {
	Task        string `json:"task"`
	Intent      string `json:"intent"`
	Start       string `json:"start"`
	End         string `json:"end"`
	DurationMin int    `json:"duration_min"`
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason"`
}

// Log is the durable shape of the store: date keys mapped to the records
// saved for that day in insertion order.
type Log map[string][]Record

func toRecord(sess session.Session) Record {
	return Record{
		Task:        sess.Task,
		Intent:      sess.Intent,
		Start:       timeutil.Clock(sess.Start),
		End:         timeutil.Clock(sess.End),
		DurationMin: sess.DurationMin,
		Outcome:     string(sess.Outcome),
		Reason:      sess.Reason,
	}
}

// toSession rebuilds a session from its record. The date key is the day of
// the start or of the save depending on policy, and a session may cross
// midnight, so the other end of the interval is moved by a day when the wall
// clock values are out of order.
func (r Record) toSession(dateKey string, policy BucketBy) (session.Session, error) {
	outcome := session.Outcome(r.Outcome)
	if outcome != session.Finished && outcome != session.Interrupted {
		return session.Session{}, errInvalidOutcome.Fmt(r.Outcome)
	}

	start, err := timeutil.At(dateKey, r.Start)
	if err != nil {
		return session.Session{}, err
	}

	end, err := timeutil.At(dateKey, r.End)
	if err != nil {
		return session.Session{}, err
	}

	if end.Before(start) {
		if policy == BucketByStart {
			end = end.AddDate(0, 0, 1)
		} else {
			start = start.AddDate(0, 0, -1)
		}
	}

	return session.Session{
		Task:        r.Task,
		Intent:      r.Intent,
		Start:       start,
		End:         end,
		DurationMin: r.DurationMin,
		Outcome:     outcome,
		Reason:      r.Reason,
	}, nil
}

func toLog(days map[string][]session.Session) Log {
	l := make(Log, len(days))

	for key, sessions := range days {
		records := make([]Record, len(sessions))

		for i := range sessions {
			records[i] = toRecord(sessions[i])
		}

		l[key] = records
	}

	return l
}

func validDateKey(key string) bool {
	_, err := time.Parse(timeutil.DateKeyLayout, key)
	return err == nil
}
