package tracker

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/sessionlog/internal/pathutil"
	"github.com/ayoisaiah/sessionlog/internal/session"
)

// notify sends a desktop notification for a saved session.
func (t *Tracker) notify(sess session.Session) {
	if !t.opts.Notifications.Enabled {
		return
	}

	title := "Session saved: " + sess.Task

	msg := fmt.Sprintf("%d min, %s", sess.DurationMin, sess.Outcome)
	if sess.Reason != "" {
		msg += " (" + sess.Reason + ")"
	}

	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "static", "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		t.log.Warn("unable to display notification", "error", err)
	}
}

// runSessionCmd executes the command configured to run after every saved
// session.
func (t *Tracker) runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.CommandContext(ctx, name, args...).Run()
}
