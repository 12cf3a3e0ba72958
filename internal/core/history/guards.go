package history

import (
	"fmt"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/core/rating"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to a validation error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return apperr.Validation("%s", r.Reason)
}

// CreateEntryContext provides context for history entry creation guards.
type CreateEntryContext struct {
	Date string
	Rate string
}

// CanCreateEntry evaluates whether a history entry can be recorded.
// Rules:
// - Date must be a real calendar date in DD_MM_YYYY form
// - Rate must be 1-5 or ?
func CanCreateEntry(ctx CreateEntryContext) GuardResult {
	if _, err := ParseDate(ctx.Date); err != nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid date %q (expected DD_MM_YYYY)", ctx.Date),
		}
	}

	if err := rating.Validate(ctx.Rate); err != nil {
		return GuardResult{Allowed: false, Reason: err.Error()}
	}

	return GuardResult{Allowed: true}
}

// CanSetRate evaluates whether rate is an accepted set rating.
func CanSetRate(rate string) GuardResult {
	if err := rating.Validate(rate); err != nil {
		return GuardResult{Allowed: false, Reason: err.Error()}
	}
	return GuardResult{Allowed: true}
}
