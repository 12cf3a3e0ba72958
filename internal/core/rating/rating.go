// Package rating holds the rating vocabulary shared by garments and sets.
// This is part of the Functional Core - no I/O, only pure functions.
package rating

import (
	"fmt"
	"strconv"
)

// Unrated is the rating a new garment starts with.
const Unrated = "?"

// Values lists every accepted rating in display order.
var Values = []string{"1", "2", "3", "4", "5", Unrated}

// IsValid reports whether r is one of "1".."5" or "?".
func IsValid(r string) bool {
	for _, v := range Values {
		if v == r {
			return true
		}
	}
	return false
}

// Validate returns an error describing why r is not a rating.
func Validate(r string) error {
	if !IsValid(r) {
		return fmt.Errorf("invalid rate %q (expected 1-5 or ?)", r)
	}
	return nil
}

// Score returns the numeric value of r. Unrated and invalid ratings return ok=false.
func Score(r string) (int, bool) {
	if r == Unrated {
		return 0, false
	}
	n, err := strconv.Atoi(r)
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// Stars renders a rating as filled and empty stars, "?" for unrated.
func Stars(r string) string {
	n, ok := Score(r)
	if !ok {
		return Unrated
	}
	out := ""
	for i := 1; i <= 5; i++ {
		if i <= n {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
