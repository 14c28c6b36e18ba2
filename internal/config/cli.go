package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Backend       string
	StorePath     string
	BucketBy      string
	SessionCmd    string
	Refresh       string
	LogLevel      string
	DisableNotify bool
	Notify        bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags override values read from the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Backend:       ctx.String("backend"),
			StorePath:     ctx.String("store"),
			BucketBy:      ctx.String("bucket-by"),
			SessionCmd:    ctx.String("session-cmd"),
			Refresh:       ctx.String("refresh"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			Notify:        ctx.Bool("notify"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Backend != "" {
		c.Storage.Backend = strings.ToLower(strings.TrimSpace(opts.Backend))
	}

	if opts.StorePath != "" {
		c.Storage.Path = opts.StorePath
	}

	if opts.BucketBy != "" {
		c.Storage.BucketBy = strings.ToLower(strings.TrimSpace(opts.BucketBy))
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Logging.Level = opts.LogLevel
	}

	if opts.Notify {
		c.Notifications.Enabled = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Refresh != "" {
		dur, err := parseDuration(opts.Refresh)
		if err != nil {
			return errInvalidCLIDuration.Wrap(err)
		}

		c.Display.RefreshInterval = dur
	}

	return nil
}

// parseDuration parses a duration string. A bare number is taken to be
// seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "s")
}
