package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sessionlog/internal/config"
	"github.com/ayoisaiah/sessionlog/internal/logging"
	"github.com/ayoisaiah/sessionlog/internal/pathutil"
	"github.com/ayoisaiah/sessionlog/internal/ui"
	"github.com/ayoisaiah/sessionlog/store"
	"github.com/ayoisaiah/sessionlog/tracker"
)

const (
	envNoColor           = "NO_COLOR"
	envSessionLogNoColor = "SESSIONLOG_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, writing one with default values on the
// first run, and applies the command-line overrides. The first-run prompt is
// only shown when prompt is true.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	err := pathutil.Initialize()
	if err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithDefaultPaths(),
	)

	return config.New(opts...)
}

// setupLogger installs the file logger as the default slog logger.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	logger, closer := logging.New(logging.Options{
		Path:  cfg.System.LogPath,
		Level: level,
	})

	slog.SetDefault(logger)

	return logger, closer, nil
}

// openStore opens the session log with the configured backend. When the
// bolt backend is in use and importFrom is set, days found in the JSON log
// at importFrom that the database does not have yet are imported first.
// Read-only commands pass an empty importFrom so nothing is written.
func openStore(
	cfg *config.Config,
	logger *slog.Logger,
	importFrom string,
) (*store.Store, error) {
	bucketBy, err := store.ParseBucketBy(cfg.Storage.BucketBy)
	if err != nil {
		return nil, err
	}

	var backend store.Backend

	switch cfg.Storage.Backend {
	case config.BackendBolt:
		db, err := store.OpenBolt(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}

		if importFrom != "" {
			n, err := db.Import(store.NewJSONFile(importFrom))
			if err != nil {
				_ = db.Close()
				return nil, err
			}

			if n > 0 {
				logger.Info(
					"imported days from the JSON log",
					slog.Int("days", n),
					slog.String("from", importFrom),
				)
			}
		}

		backend = db
	default:
		backend = store.NewJSONFile(cfg.Storage.Path)
	}

	s, err := store.Open(backend, store.WithBucketBy(bucketBy))
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	logger.Debug(
		"session log opened",
		slog.String("path", s.Path()),
		slog.String("backend", cfg.Storage.Backend),
		slog.String("bucket_by", string(bucketBy)),
	)

	return s, nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the status of the
// session tracked by a running instance.
func statusAction(_ *cli.Context) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return tracker.ReportStatus(
		config.Stdout,
		pathutil.StatusFilePath(),
		now(),
	)
}

// defaultAction starts the interactive session tracker.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	st, err := openStore(cfg, logger, pathutil.JSONFilePath())
	if err != nil {
		return err
	}

	defer st.Close()

	t := tracker.New(st, cfg, tracker.WithLogger(logger))

	p := tea.NewProgram(tracker.NewModel(t))

	_, err = p.Run()
	if err != nil {
		return err
	}

	if n := len(t.Pending()); n > 0 {
		pterm.Warning.Printfln(
			"%d session(s) could not be saved to %s",
			n,
			st.Path(),
		)
	}

	return nil
}

// warnPreRelease prints a notice when running a pre-release build.
func warnPreRelease(version string) {
	if !strings.Contains(version, "-") {
		return
	}

	pterm.Warning.Printfln(
		"You are running a pre-release version of sessionlog (%s). Back up your session log before relying on it.",
		version,
	)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/sessionlog/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SESSIONLOG_NO_COLOR is set
	if _, exists := os.LookupEnv(envSessionLogNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	warnPreRelease(ctx.App.Version)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting sessionlog")

	return nil
}
