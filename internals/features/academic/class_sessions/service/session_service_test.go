package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestValidateTimeRange(t *testing.T) {
	start := mustTime(t, "2024-01-01T10:00:00Z")

	cases := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{"end after start", start.Add(time.Hour), false},
		{"end equals start", start, true},
		{"end before start", start.Add(-time.Minute), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTimeRange(start, tc.end)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateTimeRange err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestRecurrenceNormalize(t *testing.T) {
	rec := Recurrence{Frequency: " Weekly ", Interval: 0, Count: -3}.Normalize()
	if rec.Frequency != FrequencyWeekly {
		t.Errorf("frequency = %q, want %q", rec.Frequency, FrequencyWeekly)
	}
	if rec.Interval != 1 {
		t.Errorf("interval = %d, want 1", rec.Interval)
	}
	if rec.Count != 1 {
		t.Errorf("count = %d, want 1", rec.Count)
	}

	large := Recurrence{Frequency: "daily", Interval: 1, Count: 10000}.Normalize()
	if large.Count != 10000 {
		t.Errorf("count = %d, want 10000 (normalization must not clamp)", large.Count)
	}
}

func TestRecurrenceStep(t *testing.T) {
	cases := []struct {
		freq     string
		interval int
		want     int
	}{
		{FrequencyDaily, 1, 1},
		{FrequencyDaily, 3, 3},
		{FrequencyWeekly, 1, 7},
		{FrequencyWeekly, 2, 14},
	}
	for _, tc := range cases {
		got := Recurrence{Frequency: tc.freq, Interval: tc.interval}.Step()
		if got != tc.want {
			t.Errorf("Step(%s/%d) = %d, want %d", tc.freq, tc.interval, got, tc.want)
		}
	}
}

func TestExpandOccurrencesWeekly(t *testing.T) {
	start := mustTime(t, "2024-01-01T00:00:00Z")
	end := mustTime(t, "2024-01-01T01:00:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyWeekly,
		Interval:  1,
		Count:     4,
	})

	wantStarts := []string{
		"2024-01-01T00:00:00Z",
		"2024-01-08T00:00:00Z",
		"2024-01-15T00:00:00Z",
		"2024-01-22T00:00:00Z",
	}
	if len(got) != len(wantStarts) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(wantStarts))
	}
	for i, ws := range wantStarts {
		want := mustTime(t, ws)
		if !got[i].Start.Equal(want) {
			t.Errorf("occurrence %d start = %s, want %s", i, got[i].Start, want)
		}
		if gap := got[i].End.Sub(got[i].Start); gap != time.Hour {
			t.Errorf("occurrence %d duration = %s, want 1h", i, gap)
		}
	}
}

func TestExpandOccurrencesDailyInterval(t *testing.T) {
	start := mustTime(t, "2024-03-01T08:00:00Z")
	end := mustTime(t, "2024-03-01T09:30:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyDaily,
		Interval:  2,
		Count:     3,
	})

	if len(got) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(got))
	}
	second := mustTime(t, "2024-03-03T08:00:00Z")
	if !got[1].Start.Equal(second) {
		t.Errorf("second start = %s, want %s", got[1].Start, second)
	}
}

// The series length always equals min(count, occurrences before until);
// a count above the per-request cap expands fully here and is rejected
// upstream, never silently shortened.
func TestExpandOccurrencesHonorsLargeCount(t *testing.T) {
	start := mustTime(t, "2024-01-01T08:00:00Z")
	end := mustTime(t, "2024-01-01T09:00:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyDaily,
		Interval:  1,
		Count:     400,
	})

	if len(got) != 400 {
		t.Fatalf("got %d occurrences, want 400", len(got))
	}
}

func TestCreateRecurringRejectsOverCapCount(t *testing.T) {
	start := mustTime(t, "2024-01-01T08:00:00Z")
	end := mustTime(t, "2024-01-01T09:00:00Z")

	// rejection happens before any storage access
	svc := NewLifecycle(nil)
	_, err := svc.CreateRecurring(context.Background(), uuid.New(), start, end, nil, Recurrence{
		Frequency: FrequencyDaily,
		Interval:  1,
		Count:     maxOccurrences + 1,
	}, uuid.New())

	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %v", err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", fe.Code)
	}
}

func TestExpandOccurrencesUntilTruncates(t *testing.T) {
	start := mustTime(t, "2024-01-01T00:00:00Z")
	end := mustTime(t, "2024-01-01T01:00:00Z")
	until := mustTime(t, "2024-01-10T00:00:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyWeekly,
		Interval:  1,
		Count:     4,
		Until:     &until,
	})

	// 01-01 and 01-08 fit; 01-15 exceeds until
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
}

func TestExpandOccurrencesUntilBeforeFirst(t *testing.T) {
	start := mustTime(t, "2024-01-10T00:00:00Z")
	end := mustTime(t, "2024-01-10T01:00:00Z")
	until := mustTime(t, "2024-01-01T00:00:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyDaily,
		Interval:  1,
		Count:     5,
		Until:     &until,
	})

	if len(got) != 0 {
		t.Fatalf("got %d occurrences, want 0 (until precedes first start)", len(got))
	}
}

func TestExpandOccurrencesUntilOnBoundary(t *testing.T) {
	start := mustTime(t, "2024-01-01T00:00:00Z")
	end := mustTime(t, "2024-01-01T01:00:00Z")
	until := mustTime(t, "2024-01-08T00:00:00Z")

	got := ExpandOccurrences(start, end, Recurrence{
		Frequency: FrequencyWeekly,
		Interval:  1,
		Count:     4,
		Until:     &until,
	})

	// an occurrence starting exactly at until is still generated
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
}

func TestRecurrenceSnapshot(t *testing.T) {
	until := mustTime(t, "2024-06-01T00:00:00Z")
	snap := Recurrence{Frequency: FrequencyWeekly, Interval: 2, Count: 6, Until: &until}.Snapshot()

	if snap["frequency"] != FrequencyWeekly {
		t.Errorf("frequency = %v", snap["frequency"])
	}
	if snap["interval"] != 2 {
		t.Errorf("interval = %v", snap["interval"])
	}
	if snap["count"] != 6 {
		t.Errorf("count = %v", snap["count"])
	}
	if snap["until"] != "2024-06-01T00:00:00Z" {
		t.Errorf("until = %v", snap["until"])
	}

	noUntil := Recurrence{Frequency: FrequencyDaily, Interval: 1, Count: 1}.Snapshot()
	if _, ok := noUntil["until"]; ok {
		t.Error("until present in snapshot without cutoff")
	}
}
