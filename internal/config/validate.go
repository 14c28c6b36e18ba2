package config

import (
	"log/slog"
	"slices"
	"time"
)

var (
	minRefreshInterval = 1 * time.Second
	maxRefreshInterval = 1 * time.Hour
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	if c.Display.RefreshInterval < minRefreshInterval ||
		c.Display.RefreshInterval > maxRefreshInterval {
		return errInvalidRefresh.Fmt(
			minRefreshInterval,
			maxRefreshInterval,
			c.Display.RefreshInterval,
		)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateStorage() error {
	if !slices.Contains([]string{BackendJSON, BackendBolt}, c.Storage.Backend) {
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	if !slices.Contains([]string{BucketByStart, BucketBySave}, c.Storage.BucketBy) {
		return errUnknownBucketBy.Fmt(c.Storage.BucketBy)
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Logging.Level))
	if err != nil {
		return level, errInvalidLogLevel.Fmt(c.Logging.Level)
	}

	return level, nil
}
