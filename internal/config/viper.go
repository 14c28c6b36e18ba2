package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyStorageBackend       = "storage.backend"
	keyStoragePath          = "storage.path"
	keyStorageBucketBy      = "storage.bucket_by"
	keyRefreshInterval      = "display.refresh_interval"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHourClock  = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "logging.level"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file with default values is written if none exists at
// configPath.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults. Values already present in c,
// such as answers to the first-run prompt, take precedence over the
// built-in defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStorageBackend, BackendJSON)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyStorageBucketBy, BucketByStart)
	v.SetDefault(keyRefreshInterval, "1m")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHourClock, true)
	v.SetDefault(keyNotificationsEnabled, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")

	if c.Storage.Backend != "" {
		v.SetDefault(keyStorageBackend, c.Storage.Backend)
	}

	if c.Storage.BucketBy != "" {
		v.SetDefault(keyStorageBucketBy, c.Storage.BucketBy)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}
