package model

import "testing"

func TestSessionStatusValid(t *testing.T) {
	for _, s := range []SessionStatus{
		SessionStatusScheduled,
		SessionStatusActive,
		SessionStatusCompleted,
		SessionStatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []SessionStatus{"", "archived", "SCHEDULED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestSessionStatusTerminal(t *testing.T) {
	cases := map[SessionStatus]bool{
		SessionStatusScheduled: false,
		SessionStatusActive:    false,
		SessionStatusCompleted: true,
		SessionStatusCancelled: true,
	}
	for s, want := range cases {
		if got := s.Terminal(); got != want {
			t.Errorf("Terminal(%q) = %v, want %v", s, got, want)
		}
	}
}
