// Package apperr defines the error kinds surfaced by the catalog.
//
// Every error the store and services return is either an *Error carrying one
// of the kinds below, or wraps one. Callers branch with errors.Is against the
// sentinels rather than matching message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers.
type Kind string

const (
	// KindNotFound means no row matches the given key.
	KindNotFound Kind = "not_found"
	// KindValidation means a value is outside a recognized vocabulary or format.
	KindValidation Kind = "validation"
	// KindStore means the underlying storage failed.
	KindStore Kind = "store"
)

// Error is a classified catalog error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is.
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrValidation = &Error{Kind: KindValidation, Message: "invalid value"}
	ErrStore      = &Error{Kind: KindStore, Message: "storage failure"}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a KindValidation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a storage failure.
func Store(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// UserMessage returns the text a surface should show for err.
// Store failures hide driver detail behind a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case KindStore:
		return "storage error: " + e.Message
	default:
		return e.Message
	}
}
