// Package report prints messages and errors to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/sessionlog/internal/osutil"
)

// Error prints err with the error prefix.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits the program with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
