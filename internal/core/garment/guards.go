package garment

import (
	"fmt"
	"strings"

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

// CreateGarmentContext provides context for garment creation guards.
type CreateGarmentContext struct {
	Name   string
	Kind   string
	Colors [3]string
}

// CanCreateGarment evaluates whether a garment can be created.
// Rules:
// - Name must not be empty
// - Kind must be one of the known categories
// - Every colour must be empty, RGB or ARGB hex
func CanCreateGarment(ctx CreateGarmentContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "garment name cannot be empty"}
	}

	if !IsKnownKind(ctx.Kind) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown garment kind %q", ctx.Kind),
		}
	}

	for i, c := range ctx.Colors {
		if !IsValidColor(c) {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("color%d %q is not a 6 or 8 digit hex code", i+1, c),
			}
		}
	}

	return GuardResult{Allowed: true}
}

// CanRename evaluates whether a garment can take a new name.
func CanRename(newName string) GuardResult {
	if strings.TrimSpace(newName) == "" {
		return GuardResult{Allowed: false, Reason: "garment name cannot be empty"}
	}
	return GuardResult{Allowed: true}
}

// CanSetRate evaluates whether rate is an accepted garment rating.
func CanSetRate(rate string) GuardResult {
	if err := rating.Validate(rate); err != nil {
		return GuardResult{Allowed: false, Reason: err.Error()}
	}
	return GuardResult{Allowed: true}
}

// CanSetClear evaluates whether clear is an accepted clean flag.
func CanSetClear(clear string) GuardResult {
	if clear != ClearTrue && clear != ClearFalse {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid clear flag %q (expected True or False)", clear),
		}
	}
	return GuardResult{Allowed: true}
}
