package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Backend  string
	BucketBy string
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. The prompts are only shown on the first run, when no
// config file exists at configPath yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	_ = putils.BulletListFromString(`Follow the prompts below to configure sessionlog for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'sessionlog edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should finished sessions be stored?").
				Options(
					huh.NewOption("JSON file (readable, easy to back up)", BackendJSON).Selected(true),
					huh.NewOption("BoltDB database (single instance)", BackendBolt),
				).
				Value(&opts.Backend),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which day should a session that crosses midnight belong to?").
				Options(
					huh.NewOption("The day it started", BucketByStart).Selected(true),
					huh.NewOption("The day it was saved", BucketBySave),
				).
				Value(&opts.BucketBy),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Storage.Backend = opts.Backend
	c.Storage.BucketBy = opts.BucketBy
}
