package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sessionlog/internal/timeutil"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "Path to the session log. Defaults to a file in the XDG data directory",
	}

	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Storage backend for the session log: json or bolt",
	}

	bucketByFlag = &cli.StringFlag{
		Name:  "bucket-by",
		Usage: "File sessions under the day they started on (start) or the day they were saved (save)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is saved",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Display a system notification after a session is saved",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each saved session",
	}

	refreshFlag = &cli.StringFlag{
		Name:  "refresh",
		Usage: "How often the elapsed time is refreshed (e.g. 30s, 1m). A bare number is taken as seconds",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum level of the entries written to the log file: debug, info, warn or error",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Show sessions from a predefined period: " + periodList(),
		Value:   string(timeutil.PeriodAllTime),
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Show sessions on or after a date (e.g. '2024-01-02', '3 days ago', 'last monday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the sessions as JSON",
	}

	tableFlag = &cli.BoolFlag{
		Name:  "table",
		Usage: "Print the sessions in a table",
	}
)

func periodList() string {
	var s string

	for i, p := range timeutil.PeriodCollection {
		if i > 0 {
			s += ", "
		}

		s += string(p)
	}

	return s
}
