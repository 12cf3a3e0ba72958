// Package history contains the pure business logic for the outfit history.
// This is part of the Functional Core - no I/O, only pure functions.
package history

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the DD_MM_YYYY key format used for sets.
const DateLayout = "02_01_2006"

// FormatDate renders t as a history date key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a history date key.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// PhotoPath returns the convention photo reference for a set date.
// The format is sets/Set_from_<date>.png relative to the data directory.
func PhotoPath(date string) string {
	return fmt.Sprintf("sets/Set_from_%s.png", date)
}

// ParsePhotoDate extracts the date key from a set photo reference.
// Returns "" if the reference does not follow the convention.
func ParsePhotoDate(ref string) string {
	if !strings.HasPrefix(ref, "sets/Set_from_") || !strings.HasSuffix(ref, ".png") {
		return ""
	}
	date := strings.TrimSuffix(strings.TrimPrefix(ref, "sets/Set_from_"), ".png")
	if _, err := ParseDate(date); err != nil {
		return ""
	}
	return date
}
