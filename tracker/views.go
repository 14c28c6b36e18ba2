package tracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/ui"
)

const maxLogDays = 14

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.style.title.Render("SessionLog"))
	s.WriteString("\n")
	s.WriteString(m.style.hint.Render(m.tracker.Status().String()))

	return s.String()
}

func (m *Model) idleView() string {
	var s strings.Builder

	s.WriteString(m.task.View())
	s.WriteString("\n")
	s.WriteString(m.intent.View())

	if n := len(m.tracker.Pending()); n > 0 {
		s.WriteString("\n\n")
		s.WriteString(m.style.err.Render(
			fmt.Sprintf("%d session(s) not saved yet", n),
		))
	}

	bindings := []key.Binding{m.keys.start, m.keys.next, m.keys.history}
	if len(m.tracker.Pending()) > 0 {
		bindings = append(bindings, m.keys.retry)
	}

	bindings = append(bindings, m.keys.quit)

	s.WriteString("\n\n" + m.help.ShortHelpView(bindings))

	return s.String()
}

func (m *Model) activeView() string {
	var s strings.Builder

	active, _ := m.tracker.Active()

	s.WriteString(m.style.main.Render(active.Task))

	if active.Intent != "" {
		s.WriteString("\n")
		s.WriteString(m.style.secondary.Render(active.Intent))
	}

	s.WriteString("\n")
	s.WriteString(
		m.style.hint.Render("started at " + active.Start.Local().Format(m.layout)),
	)

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.end,
		m.keys.history,
		m.keys.quit,
	}))

	return s.String()
}

func (m *Model) promptView() string {
	var s strings.Builder

	if m.form != nil {
		s.WriteString(m.form.View())
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.cancel,
		m.keys.quit,
	}))

	return s.String()
}

func (m *Model) logView() string {
	var s strings.Builder

	days := 0

	for dateKey, sessions := range m.tracker.Entries() {
		if days == maxLogDays {
			break
		}

		if days > 0 {
			s.WriteString("\n")
		}

		s.WriteString(m.style.date.Render(ui.DateHeader(dateKey)))
		s.WriteString("\n")

		for i := range sessions {
			s.WriteString(m.sessionView(&sessions[i]))
			s.WriteString("\n")
		}

		days++
	}

	if days == 0 {
		s.WriteString(m.style.hint.Render("No sessions yet"))
		s.WriteString("\n")
	}

	s.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.history,
		m.keys.quit,
	}))

	return s.String()
}

func (m *Model) sessionView(sess *session.Session) string {
	line := ui.SessionLine(sess)

	if sess.Reason != "" {
		line += m.style.hint.Render(" " + sess.Reason)
	}

	return line
}

func (m *Model) messageView() string {
	switch {
	case m.err != nil:
		return "\n\n" + m.style.err.Render(m.err.Error())
	case m.notice != "":
		return "\n\n" + m.style.secondary.Render(m.notice)
	}

	return ""
}

func (m *Model) View() string {
	var body string

	switch {
	case m.tab == logTab && m.form == nil:
		body = m.logView()
	case m.tracker.State() == session.Idle:
		body = m.idleView()
	case m.tracker.State() == session.Active:
		body = m.activeView()
	default:
		body = m.promptView()
	}

	return m.style.base.Render(
		m.headerView() + "\n\n" + body + m.messageView(),
	)
}
