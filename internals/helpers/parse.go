package helper

import (
	"fmt"
	"strings"
	"time"
)

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant parses client-supplied timestamps. RFC3339 first, then a few
// lenient fallbacks (naive timestamps are taken as UTC).
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", s)
}

// ParseInstantOr parses s, falling back to def when s is empty or invalid.
func ParseInstantOr(s string, def time.Time) time.Time {
	t, err := ParseInstant(s)
	if err != nil {
		return def
	}
	return t
}

// DateOnly truncates an instant to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}
