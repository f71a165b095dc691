package bmssp

import "errors"

// ErrInvariantViolation is the umbrella sentinel for every programmer
// error the recursion can detect in itself (spec.md §7): a bug, not a
// bad input. Library code returns it rather than panicking; only
// cmd/bmsspsolver is allowed to turn it into a process exit.
var ErrInvariantViolation = errors.New("bmssp: invariant violation")

// ErrBaseCaseSizeMismatch indicates BaseCase was entered with a seed
// block that does not hold exactly one vertex.
var ErrBaseCaseSizeMismatch = errors.New("bmssp: base case size mismatch")

// wrapInvariant joins a specific sentinel under the umbrella
// ErrInvariantViolation so callers can match on either with errors.Is.
func wrapInvariant(specific error) error {
	return errors.Join(ErrInvariantViolation, specific)
}
