// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

// Submission is the capability a locally-known transaction must provide:
// its own identity. Wire formats, signing and the transaction body
// itself are out of scope for this package (spec.md §1); callers pass
// whatever payload type satisfies this single method.
type Submission interface {
	TxId() TxId
}

// TxStatus is the sealed sum type describing where one transaction sits
// in the submission lifecycle. It is deliberately not a single struct
// with nullable fields — spec.md §9 calls that out explicitly as losing
// state-machine legibility — so the three cases below are distinct
// exported types, each carrying only the slot fields that apply to it.
// The unexported isTxStatus method seals the interface: only this
// package's three status types may implement it, so an exhaustive
// switch over TxStatus never needs a default case for user-defined
// states.
type TxStatus interface {
	// TxId returns the identifier of the transaction this status
	// describes.
	TxId() TxId

	isTxStatus()
}

// InSubmission is a transaction that has been locally submitted but not
// yet observed on-chain. It expires (deterministically, without ever
// being seen in a ledger) once the wallet's tip reaches Expiring.
type InSubmission struct {
	Expiring Slot
	Tx       Submission
}

// TxId implements TxStatus.
func (s InSubmission) TxId() TxId { return s.Tx.TxId() }

func (InSubmission) isTxStatus() {}

// InLedger is a transaction the wallet has observed included in a block
// at slot Acceptance. It reverts to InSubmission if a rollback moves the
// tip back before Acceptance.
type InLedger struct {
	Expiring   Slot
	Acceptance Slot
	Tx         Submission
}

// TxId implements TxStatus.
func (s InLedger) TxId() TxId { return s.Tx.TxId() }

func (InLedger) isTxStatus() {}

// Expired is a transaction whose expiry slot has passed without the
// wallet observing it accepted into a block. It reverts to InSubmission
// if a rollback moves the tip back before Expiring.
type Expired struct {
	Expiring Slot
	Tx       Submission
}

// TxId implements TxStatus.
func (s Expired) TxId() TxId { return s.Tx.TxId() }

func (Expired) isTxStatus() {}
