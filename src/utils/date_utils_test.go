package utils

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseISODate: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Errorf("parsed %v, want 2024-03-15", parsed)
	}

	for _, bad := range []string{"15/03/2024", "2024-3-5", "2024-03-15T00:00:00Z", "yesterday", ""} {
		if _, err := ParseISODate(bad); err == nil {
			t.Errorf("ParseISODate(%q): expected an error", bad)
		}
	}
}

func TestFormatISODate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	if got := FormatISODate(ts); got != "2024-03-05" {
		t.Errorf("FormatISODate = %q, want 2024-03-05", got)
	}
}

func TestTodayRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	start, end := TodayRange(now)
	if start != "2024-03-15" || end != "2024-03-15" {
		t.Errorf("TodayRange = (%q, %q), want both 2024-03-15", start, end)
	}
}
