package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sessionlog/internal/config"
	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/timeutil"
	"github.com/ayoisaiah/sessionlog/internal/ui"
	"github.com/ayoisaiah/sessionlog/store"
)

const noSessionsMsg = "No sessions found for the specified time range"

var now = time.Now

// day is the JSON representation of the sessions saved under one date key.
type day struct {
	Date     string            `json:"date"`
	Sessions []session.Session `json:"sessions"`
}

// dateRange converts the log filters to an inclusive range of date keys.
// An empty key leaves that side of the range open.
func dateRange(period, since string, t time.Time) (from, to string, err error) {
	if since != "" {
		if period != "" && period != string(timeutil.PeriodAllTime) {
			return "", "", errConflictingFilters
		}

		start, err := timeutil.FromStr(since, t)
		if err != nil {
			return "", "", errInvalidSince.Fmt(since).Wrap(err)
		}

		return timeutil.DateKey(start), "", nil
	}

	p := timeutil.Period(period)
	if p == "" {
		p = timeutil.PeriodAllTime
	}

	if !slices.Contains(timeutil.PeriodCollection, p) {
		return "", "", errInvalidPeriod.Fmt(periodList())
	}

	if p == timeutil.PeriodAllTime {
		return "", "", nil
	}

	start, end := timeutil.PeriodRange(p, t)

	return timeutil.DateKey(start), timeutil.DateKey(end), nil
}

func collectDays(st *store.Store, from, to string) []day {
	var days []day

	for key, sessions := range st.EntriesBetween(from, to) {
		days = append(days, day{
			Date:     key,
			Sessions: sessions,
		})
	}

	return days
}

// printLines prints every day as a heading followed by one line per
// session.
func printLines(w io.Writer, days []day) {
	for i := range days {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, ui.DateHeader(days[i].Date))

		for j := range days[i].Sessions {
			fmt.Fprintln(w, ui.SessionLine(&days[i].Sessions[j]))
		}
	}
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, days []day) {
	var tableBody [][]string

	for i := range days {
		for j := range days[i].Sessions {
			sess := &days[i].Sessions[j]

			outcome := ui.Green(string(sess.Outcome))
			if sess.Outcome == session.Interrupted {
				outcome = ui.Red(string(sess.Outcome))
			}

			hrs, mins := timeutil.MinsToHoursAndMins(sess.DurationMin)

			tableBody = append(tableBody, []string{
				days[i].Date,
				timeutil.Clock(sess.Start),
				timeutil.Clock(sess.End),
				fmt.Sprintf("%dh %02dm", hrs, mins),
				sess.Task,
				sess.Intent,
				outcome,
				sess.Reason,
			})
		}
	}

	tableBody = append([][]string{
		{"DATE", "START", "END", "DURATION", "TASK", "INTENT", "OUTCOME", "REASON"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func printLog(w io.Writer, days []day, asJSON, asTable bool) error {
	if asJSON {
		if days == nil {
			days = []day{}
		}

		b, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	}

	if len(days) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	if asTable {
		printSessionsTable(w, days)
		return nil
	}

	printLines(w, days)

	return nil
}

// logAction handles the log command and prints the saved sessions within a
// time period.
func logAction(ctx *cli.Context) error {
	from, to, err := dateRange(ctx.String("period"), ctx.String("since"), now())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	st, err := openStore(cfg, logger, "")
	if err != nil {
		return err
	}

	defer st.Close()

	return printLog(
		config.Stdout,
		collectDays(st, from, to),
		ctx.Bool("json"),
		ctx.Bool("table"),
	)
}
