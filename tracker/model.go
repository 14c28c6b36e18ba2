package tracker

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/sessionlog/internal/session"
)

type tab int

const (
	trackTab tab = iota
	logTab
)

const (
	clock12 = "03:04 PM"
	clock24 = "15:04"
)

// Model is the interactive terminal interface. Every user action is turned
// into a Tracker event inside Update.
type Model struct {
	tracker *Tracker
	log     *slog.Logger
	err     error
	form    *huh.Form
	help    help.Model
	style   style
	keys    keymap
	task    textinput.Model
	intent  textinput.Model
	notice  string
	layout  string
	// form values
	freeText string
	choice   session.Choice
	finished bool
	tab      tab
	// confirmQuit is set after the first quit request while a session is
	// in progress.
	confirmQuit bool
}

// NewModel returns the interface for t in its idle state.
func NewModel(t *Tracker) *Model {
	task := textinput.New()
	task.Placeholder = "What are you working on?"
	task.Prompt = "Task:   "
	task.CharLimit = 200
	task.Focus()

	intent := textinput.New()
	intent.Placeholder = "What do you want to get done? (optional)"
	intent.Prompt = "Intent: "
	intent.CharLimit = 200

	layout := clock12
	if t.opts.Display.TwentyFourHourClock {
		layout = clock24
	}

	return &Model{
		tracker: t,
		log:     t.log,
		help:    help.New(),
		style:   newStyle(t.opts.Display.DarkTheme),
		keys:    defaultKeymap,
		task:    task,
		intent:  intent,
		layout:  layout,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) outcomeForm() *huh.Form {
	m.finished = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Did you finish what you set out to do?").
				Affirmative("Finished").
				Negative("Interrupted").
				Value(&m.finished),
		),
	).WithShowHelp(false)
}

func (m *Model) reasonForm() *huh.Form {
	m.choice = session.DefaultChoice
	m.freeText = ""

	opts := make([]huh.Option[session.Choice], 0, len(session.Choices))
	for _, c := range session.Choices {
		opts = append(opts, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[session.Choice]().
				Title("What interrupted the session?").
				Options(opts...).
				Value(&m.choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Describe the interruption").
				Value(&m.freeText),
		).WithHideFunc(func() bool {
			return m.choice != session.Other
		}),
	).WithShowHelp(false)
}
