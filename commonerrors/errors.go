// Package commonerrors defines the sentinel errors used across the module.
// Callers are expected to test errors with errors.Is (or the Any/None
// helpers) rather than comparing messages.
package commonerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid reports a value that fails a refinement predicate.
	ErrInvalid = errors.New("invalid")
	// ErrUndefined reports a missing or unset parameter.
	ErrUndefined = errors.New("undefined")
	// ErrConflict reports two definitions claiming the same name.
	ErrConflict = errors.New("conflict")
	// ErrUnsupported reports a request for something the generator cannot produce.
	ErrUnsupported = errors.New("unsupported")
	// ErrStale reports generated output that no longer matches its source of truth.
	ErrStale = errors.New("stale")
)

// New returns an error wrapping target with the given description.
func New(target error, description string) error {
	return fmt.Errorf("%w: %v", target, description)
}

// Newf returns an error wrapping target with a formatted description.
func Newf(target error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", target, fmt.Sprintf(format, args...))
}

// Any returns true if the error matches any of the target errors.
func Any(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) || errors.Is(target, err) {
			return true
		}
	}
	return false
}

// None returns true if the error matches none of the target errors.
func None(err error, targets ...error) bool {
	return !Any(err, targets...)
}
