// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletcore

import (
	"fmt"

	"github.com/mariszo/cardano-wallet/selection"
)

// ErrorCode identifies a kind of facade-level failure, following the
// teacher's wallet/internal/db.Error{Code, Desc, Err} convention.
type ErrorCode int

const (
	// ErrCodeSelection wraps a *selection.Error surfaced by Create or one
	// of the addInput* entry points.
	ErrCodeSelection ErrorCode = iota

	// ErrCodePersistence wraps a failure from the persist.Store
	// collaborator (a failed read, write, or atomic transaction).
	ErrCodePersistence

	// ErrCodeNoActiveSelection is returned when an addInput* entry point
	// is called before Create has produced a selection to extend.
	ErrCodeNoActiveSelection
)

// Error is the single envelope type every facade entry point wraps its
// failures in.
type Error struct {
	Code ErrorCode
	Desc string
	Err  error

	// Selection is populated only when Code is ErrCodeSelection.
	Selection *selection.Error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return e.Desc
}

// Unwrap returns the underlying error, if any, so errors.Is/As see
// through the envelope to the *selection.Error or persistence error it
// carries.
func (e *Error) Unwrap() error {
	return e.Err
}

func wrapSelectionError(err error) *Error {
	selErr, ok := err.(*selection.Error)
	if !ok {
		return &Error{Code: ErrCodeSelection, Desc: err.Error(), Err: err}
	}

	return &Error{
		Code:      ErrCodeSelection,
		Desc:      fmt.Sprintf("selection: %s", selErr.Code),
		Err:       selErr,
		Selection: selErr,
	}
}

func wrapPersistenceError(op string, err error) *Error {
	return &Error{
		Code: ErrCodePersistence,
		Desc: fmt.Sprintf("walletcore: %s: %v", op, err),
		Err:  err,
	}
}

var errNoActiveSelection = &Error{
	Code: ErrCodeNoActiveSelection,
	Desc: "walletcore: no active selection: call Create first",
}
