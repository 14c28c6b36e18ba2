package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/sessionlog/internal/pathutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Logging       LoggingConfig      `mapstructure:"logging"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		System        SystemConfig       `mapstructure:"-"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// StorageConfig selects where finished sessions are kept
	StorageConfig struct {
		Backend  string `mapstructure:"backend"`
		Path     string `mapstructure:"path"`
		BucketBy string `mapstructure:"bucket_by"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		RefreshInterval     time.Duration `mapstructure:"refresh_interval"`
		DarkTheme           bool          `mapstructure:"dark_theme"`
		TwentyFourHourClock bool          `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// Cmd is executed after every saved session
		Cmd string `mapstructure:"cmd"`
	}

	// LoggingConfig holds logging settings
	LoggingConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds paths that are not read from the config file
	SystemConfig struct {
		ConfigPath string
		StatusPath string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.2.0"

const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

const (
	BucketByStart = "start"
	BucketBySave  = "save"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// WithDefaultPaths fills in the application paths and the default location
// of the session log for the selected backend.
func WithDefaultPaths() Option {
	return func(c *Config) error {
		err := pathutil.Initialize()
		if err != nil {
			return err
		}

		c.System.ConfigPath = pathutil.ConfigFilePath()
		c.System.StatusPath = pathutil.StatusFilePath()
		c.System.LogPath = pathutil.LogFilePath()

		if c.Storage.Path != "" {
			return nil
		}

		if c.Storage.Backend == BackendBolt {
			c.Storage.Path = pathutil.DBFilePath()
		} else {
			c.Storage.Path = pathutil.JSONFilePath()
		}

		return nil
	}
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}
