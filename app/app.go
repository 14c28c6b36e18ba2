// Package app defines the sessionlog command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sessionlog/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the sessionlog app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "sessionlog",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		SessionLog is a personal time tracker for the command-line. Start a 
		session with the task you are working on, end it when you stop, and say 
		whether you finished or what interrupted you. Every session is kept in a 
		log grouped by day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:    "log",
				Aliases: []string{"history"},
				Usage:   "Print the saved sessions grouped by day, most recent first",
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					jsonFlag,
					tableFlag,
				},
				Action: logAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running session",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			storeFlag,
			backendFlag,
			bucketByFlag,
			sessionCmdFlag,
			refreshFlag,
			notifyFlag,
			disableNotificationFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
