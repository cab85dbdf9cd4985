package repository_test

import (
	"testing"
	"time"

	"finance-tracker/internal/repository"
)

// TestParseTime tests date parsing of both storage formats.
//
// WHY: Date columns hold plain dates while datetime columns hold RFC3339
// strings; both must parse through the same helper and always come back UTC.
func TestParseTime(t *testing.T) {
	t.Run("parses a date-only string", func(t *testing.T) {
		parsed, err := repository.ParseTime("2026-08-24")

		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		if !parsed.Equal(want) {
			t.Errorf("Expected %v, got %v", want, parsed)
		}
	})

	t.Run("parses an RFC3339 string", func(t *testing.T) {
		parsed, err := repository.ParseTime("2026-08-24T15:04:05Z")

		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		want := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
		if !parsed.Equal(want) {
			t.Errorf("Expected %v, got %v", want, parsed)
		}
	})

	t.Run("normalizes offsets to UTC", func(t *testing.T) {
		parsed, err := repository.ParseTime("2026-08-24T02:00:00+02:00")

		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if parsed.Location() != time.UTC {
			t.Errorf("Expected UTC location, got %v", parsed.Location())
		}
		if parsed.Hour() != 0 {
			t.Errorf("Expected midnight UTC, got hour %d", parsed.Hour())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		if _, err := repository.ParseTime("24/08/2026"); err == nil {
			t.Error("Expected error for malformed date, got nil")
		}
	})
}

// TestFormatRoundTrip tests that stored values parse back to the same instant.
func TestFormatRoundTrip(t *testing.T) {
	t.Run("midnight round-trip", func(t *testing.T) {
		original := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

		parsed, err := repository.ParseTime(repository.FormatDateTime(original))
		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if !parsed.Equal(original) {
			t.Errorf("Expected %v, got %v", original, parsed)
		}
	})

	t.Run("datetime round-trip", func(t *testing.T) {
		original := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

		parsed, err := repository.ParseTime(repository.FormatDateTime(original))
		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if !parsed.Equal(original) {
			t.Errorf("Expected %v, got %v", original, parsed)
		}
	})

	t.Run("datetime formatting drops sub-second precision", func(t *testing.T) {
		original := time.Date(2026, 8, 24, 15, 4, 5, 123456789, time.UTC)

		parsed, err := repository.ParseTime(repository.FormatDateTime(original))
		if err != nil {
			t.Fatalf("ParseTime() returned unexpected error: %v", err)
		}
		if !parsed.Equal(original.Truncate(time.Second)) {
			t.Errorf("Expected %v, got %v", original.Truncate(time.Second), parsed)
		}
	})
}
