package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	sessModel "akademiku_backend/internals/features/academic/class_sessions/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestWindowBounds(t *testing.T) {
	grace := GraceConfig{EarlyGraceMinutes: 10, LateGraceMinutes: 15}
	ref := mustTime(t, "2024-01-01T10:30:00Z")

	from, to := grace.WindowBounds(ref)
	if want := mustTime(t, "2024-01-01T10:20:00Z"); !from.Equal(want) {
		t.Errorf("from = %s, want %s", from, want)
	}
	if want := mustTime(t, "2024-01-01T10:45:00Z"); !to.Equal(want) {
		t.Errorf("to = %s, want %s", to, want)
	}
}

func TestLoadGraceConfigDefaults(t *testing.T) {
	os.Unsetenv("EARLY_GRACE_MINUTES")
	os.Unsetenv("LATE_GRACE_MINUTES")

	grace := LoadGraceConfig()
	if grace.EarlyGraceMinutes != 10 || grace.LateGraceMinutes != 15 {
		t.Errorf("defaults = %d/%d, want 10/15", grace.EarlyGraceMinutes, grace.LateGraceMinutes)
	}
}

func TestLoadGraceConfigFromEnv(t *testing.T) {
	t.Setenv("EARLY_GRACE_MINUTES", "5")
	t.Setenv("LATE_GRACE_MINUTES", "30")

	grace := LoadGraceConfig()
	if grace.EarlyGraceMinutes != 5 || grace.LateGraceMinutes != 30 {
		t.Errorf("env override = %d/%d, want 5/30", grace.EarlyGraceMinutes, grace.LateGraceMinutes)
	}
}

// A session 10:00-11:00 with grace 10/15 accepts marking between 09:50 and
// 11:15 inclusive and rejects one minute outside either edge.
func TestOverlapsWithGrace(t *testing.T) {
	grace := GraceConfig{EarlyGraceMinutes: 10, LateGraceMinutes: 15}
	sessionStart := mustTime(t, "2024-01-01T10:00:00Z")
	sessionEnd := mustTime(t, "2024-01-01T11:00:00Z")

	cases := []struct {
		name string
		ref  string
		want bool
	}{
		{"earliest allowed instant", "2024-01-01T09:50:00Z", true},
		{"one minute too early", "2024-01-01T09:49:00Z", false},
		{"during the session", "2024-01-01T10:30:00Z", true},
		{"latest allowed instant", "2024-01-01T11:15:00Z", true},
		{"one minute too late", "2024-01-01T11:16:00Z", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := grace.WindowBounds(mustTime(t, tc.ref))
			got := Overlaps(sessionStart, sessionEnd, from, to)
			if got != tc.want {
				t.Errorf("Overlaps at %s = %v, want %v", tc.ref, got, tc.want)
			}
		})
	}
}

func TestOverlapsBoundaryTouch(t *testing.T) {
	start := mustTime(t, "2024-01-01T10:00:00Z")
	end := mustTime(t, "2024-01-01T11:00:00Z")

	// windows that merely touch an endpoint still count
	if !Overlaps(start, end, end, end.Add(time.Hour)) {
		t.Error("window starting exactly at session end should overlap")
	}
	if !Overlaps(start, end, start.Add(-time.Hour), start) {
		t.Error("window ending exactly at session start should overlap")
	}
	if Overlaps(start, end, end.Add(time.Minute), end.Add(time.Hour)) {
		t.Error("window fully past the session should not overlap")
	}
}

func TestPickLatestStart(t *testing.T) {
	mk := func(start string) sessModel.ClassSessionModel {
		return sessModel.ClassSessionModel{
			ClassSessionID:        uuid.New(),
			ClassSessionStartTime: mustTime(t, start),
		}
	}

	if got := PickLatestStart(nil); got != nil {
		t.Fatal("expected nil for empty candidate list")
	}

	a := mk("2024-01-01T08:00:00Z")
	b := mk("2024-01-01T10:00:00Z")
	c := mk("2024-01-01T09:00:00Z")

	got := PickLatestStart([]sessModel.ClassSessionModel{a, b, c})
	if got == nil || got.ClassSessionID != b.ClassSessionID {
		t.Errorf("expected the 10:00 session to win the tie-break")
	}
}

func TestCheckAllowedElevatedBypassesLookup(t *testing.T) {
	// elevated actors never hit storage; a nil DB proves it
	gate := NewWindowGate(nil, GraceConfig{EarlyGraceMinutes: 10, LateGraceMinutes: 15})

	decision, err := gate.CheckAllowed(context.Background(), uuid.New(), time.Now(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Error("elevated actor should always be allowed")
	}
	if decision.SessionID != nil {
		t.Error("elevated path must not bind a session")
	}
}
