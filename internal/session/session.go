// Package session defines tracked work sessions and the state machine that
// moves a session from start to a finished record
package session

import (
	"time"
)

// Outcome is the disposition of a finished session.
type Outcome string

const (
	Finished    Outcome = "finished"
	Interrupted Outcome = "interrupted"
)

// Session is a finished work interval. It is never modified after the
// machine emits it.
type Session struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Task        string    `json:"task"`
	Intent      string    `json:"intent"`
	Outcome     Outcome   `json:"outcome"`
	Reason      string    `json:"reason"`
	DurationMin int       `json:"duration_min"`
}

// ActiveSession is the work interval currently being tracked.
type ActiveSession struct {
	Start  time.Time
	Task   string
	Intent string
}

// Minutes returns the number of whole minutes between start and end. An end
// that precedes start counts as zero.
func Minutes(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}

	return int(d / time.Minute)
}
