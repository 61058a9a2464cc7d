// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"

	"github.com/mariszo/cardano-wallet/coin"
)

// ErrorCode identifies a kind of selection failure, following the
// teacher's wallet/internal/db.ErrorCode convention of a small closed
// enum attached to a structured error value rather than a family of
// unrelated sentinel errors.
type ErrorCode int

const (
	// ErrCodeAdaInsufficient indicates the ada supplied by the inputs
	// and reward withdrawal cannot cover fees and minimum-ada
	// requirements under any feasible output arrangement.
	ErrCodeAdaInsufficient ErrorCode = iota

	// ErrCodeSelectionFull indicates the minimal feasible arrangement
	// exceeds Parameters.MaximumSizeOfSelection.
	ErrCodeSelectionFull

	// ErrCodeInvariantViolation indicates checkInvariant found a
	// violated invariant. This is never returned to end users; it
	// signals a bug in the engine itself.
	ErrCodeInvariantViolation
)

// String renders the error code for diagnostics.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeAdaInsufficient:
		return "SelectionAdaInsufficient"
	case ErrCodeSelectionFull:
		return "SelectionFull"
	case ErrCodeInvariantViolation:
		return "SelectionInvariantViolation"
	default:
		return "unknown selection error"
	}
}

// Error is the structured failure type returned by every operation in
// this package. Its Code discriminates which of the three error
// taxonomies (spec.md §7) applies; SizeMaximum/SizeRequired are populated
// only for ErrCodeSelectionFull, and Violation only for
// ErrCodeInvariantViolation.
type Error struct {
	Code ErrorCode

	// SizeMaximum and SizeRequired are set only when Code is
	// ErrCodeSelectionFull. SizeMaximum is always strictly less than
	// SizeRequired (testable property 6).
	SizeMaximum  coin.Size
	SizeRequired coin.Size

	// Violation is set only when Code is ErrCodeInvariantViolation.
	Violation InvariantViolation
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeAdaInsufficient:
		return "selection: insufficient ada to cover fees and minimum-ada requirements"
	case ErrCodeSelectionFull:
		return fmt.Sprintf(
			"selection: full: size required %s exceeds maximum %s",
			e.SizeRequired, e.SizeMaximum,
		)
	case ErrCodeInvariantViolation:
		return fmt.Sprintf("selection: invariant violated: %s", e.Violation)
	default:
		return "selection: unknown error"
	}
}

// ErrAdaInsufficient constructs the informational insufficient-ada
// failure. It carries no additional data: the caller decides whether to
// request more inputs.
func ErrAdaInsufficient() *Error {
	return &Error{Code: ErrCodeAdaInsufficient}
}

// ErrSelectionFull constructs the oversized-selection failure, reporting
// both the configured maximum and the size the minimal feasible
// arrangement actually required.
func ErrSelectionFull(sizeMaximum, sizeRequired coin.Size) *Error {
	return &Error{
		Code:         ErrCodeSelectionFull,
		SizeMaximum:  sizeMaximum,
		SizeRequired: sizeRequired,
	}
}

// errInvariantViolation constructs the fatal invariant-violation failure
// used internally by checkInvariant-adjacent assertions. It is never
// surfaced to end users (spec.md §6).
func errInvariantViolation(v InvariantViolation) *Error {
	return &Error{Code: ErrCodeInvariantViolation, Violation: v}
}
