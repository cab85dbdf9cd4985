package repository

import (
	"fmt"
	"time"
)

// DateLayout is the accepted format for date-only input values.
const DateLayout = "2006-01-02"

// ParseTime parses a stored date string in "2006-01-02" or RFC3339 format.
// All date round-tripping goes through this helper and FormatDateTime so
// date handling is defined once, not per accessor.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(DateLayout, str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// FormatDateTime renders a time for storage. The full RFC3339 timestamp is
// stored even for conceptually date-valued columns so a time-of-day set by
// the caller survives the round trip.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
