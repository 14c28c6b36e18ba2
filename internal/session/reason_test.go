package session_test

import (
	"testing"

	"github.com/ayoisaiah/sessionlog/internal/session"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		Choice   session.Choice
		FreeText string
		Want     string
	}{
		{session.Legitimate, "ignored", "Legitimate"},
		{session.Distracted, "", "Distracted"},
		{session.Avoidance, "  ", "Avoidance"},
		{session.Other, "phone call", "phone call"},
		{session.Other, "  meeting \n", "meeting"},
		{session.Other, "", ""},
		{session.Other, "   ", ""},
	}

	for _, tc := range cases {
		got := session.Resolve(tc.Choice, tc.FreeText)
		if got != tc.Want {
			t.Errorf(
				"Resolve(%q, %q): expected %q, but got %q",
				tc.Choice,
				tc.FreeText,
				tc.Want,
				got,
			)
		}
	}
}
