// Package errors provides error handling for rome.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping with user-facing hints
//   - Marks for classifying errors without string matching
//
// Usage:
//
//	// Wrap with context
//	if err := numeral.Parse(s); err != nil {
//	    return errors.Wrapf(err, "failed to parse %q", s)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "use letters I, V, X, L, C, D and M")
//
//	// Classify
//	if errors.IsInvalidInputError(err) {
//	    // caller's fault, show the hint
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	FlattenHints  = crdb.FlattenHints
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// ErrInvalidInput marks every error caused by the caller's input rather than
// by rome itself. Mark the error being returned, not a package sentinel:
// a marked sentinel takes on the mark's identity and would match every
// other sentinel marked the same way.
var ErrInvalidInput = New("invalid input")

// IsInvalidInputError checks if an error is or is marked as ErrInvalidInput
func IsInvalidInputError(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// MarkInvalidInput marks err so that IsInvalidInputError matches it while
// errors.Is keeps matching whatever err wraps.
func MarkInvalidInput(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrInvalidInput)
}

// Hint returns the flattened user hints of err, or "" when there are none.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	return FlattenHints(err)
}
