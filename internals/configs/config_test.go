package configs

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("AKADEMIKU_TEST_KEY", "value")

	if got := GetEnv("AKADEMIKU_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv set key = %q, want value", got)
	}
	if got := GetEnv("AKADEMIKU_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv missing key = %q, want fallback", got)
	}
	if got := GetEnv("AKADEMIKU_TEST_MISSING"); got != "" {
		t.Errorf("GetEnv missing key without default = %q, want empty", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	cases := []struct {
		name string
		val  string
		set  bool
		want int
	}{
		{"missing", "", false, 42},
		{"valid", "7", true, 7},
		{"zero", "0", true, 0},
		{"negative falls back", "-5", true, 42},
		{"non-integer falls back", "ten", true, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv("AKADEMIKU_TEST_INT", tc.val)
			}
			if got := GetEnvInt("AKADEMIKU_TEST_INT", 42); got != tc.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tc.want)
			}
		})
	}
}
