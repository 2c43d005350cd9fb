package helper

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"rfc3339", "2024-01-01T10:00:00Z", "2024-01-01T10:00:00Z", false},
		{"rfc3339 with offset", "2024-01-01T10:00:00+07:00", "2024-01-01T03:00:00Z", false},
		{"naive timestamp", "2024-01-01T10:00:00", "2024-01-01T10:00:00Z", false},
		{"space separator", "2024-01-01 10:00:00", "2024-01-01T10:00:00Z", false},
		{"date only", "2024-01-01", "2024-01-01T00:00:00Z", false},
		{"surrounding whitespace", "  2024-01-01  ", "2024-01-01T00:00:00Z", false},
		{"empty", "", "", true},
		{"garbage", "yesterday", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInstant(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseInstant(%q) err = %v, wantErr = %v", tc.in, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			want, perr := time.Parse(time.RFC3339, tc.want)
			if perr != nil {
				t.Fatalf("bad expectation %q: %v", tc.want, perr)
			}
			if !got.Equal(want) {
				t.Errorf("ParseInstant(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestParseInstantOr(t *testing.T) {
	def := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	if got := ParseInstantOr("", def); !got.Equal(def) {
		t.Errorf("empty input should fall back, got %s", got)
	}
	if got := ParseInstantOr("not-a-time", def); !got.Equal(def) {
		t.Errorf("invalid input should fall back, got %s", got)
	}
	want := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	if got := ParseInstantOr("2024-06-02", def); !got.Equal(want) {
		t.Errorf("valid input ignored, got %s", got)
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midday utc",
			time.Date(2024, 1, 15, 13, 45, 30, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"offset crossing the date line",
			time.Date(2024, 1, 15, 3, 0, 0, 0, loc), // 2024-01-14T20:00Z
			time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateOnly(tc.in); !got.Equal(tc.want) {
				t.Errorf("DateOnly(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
