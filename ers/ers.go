// Package ers provides constant sentinel errors and the small set of
// helpers sll uses to report contract and invariant violations.
//
// The package has no dependencies outside of the standard library.
package ers

import (
	"errors"
	"fmt"
)

// Error is a string type for declaring sentinel errors as constants.
//
// The empty Error is considered equal to a nil error for the purposes
// of Is(). errors.As correctly handles unwrapping and casting
// Error-typed error objects.
type Error string

// New converts a string into an Error.
func New(str string) error { return Error(str) }

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}

// Wrapf annotates an error with a formatted message, keeping the
// original reachable with errors.Is. Returns nil when err is nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(tmpl, args...))
}

// Join aggregates errors, dropping nils. A single non-nil error is
// returned as is.
func Join(errs ...error) error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}

	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return errors.Join(out...)
	}
}
