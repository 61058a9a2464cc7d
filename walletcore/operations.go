// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletcore

import "github.com/mariszo/cardano-wallet/submission"

// Operation is one composite intent from submission.Operations' facade
// layer, lifted to a value so ApplyOperation can take the same
// "primitive-as-data" shape as ApplyPrimitive rather than exposing six
// differently-shaped methods.
type Operation interface {
	apply(ops submission.Operations, s *submission.Store) *submission.Store
}

// RollbackTo rolls the submission store back to target, per
// submission.Operations.RollbackTo.
type RollbackTo struct {
	Target submission.Slot
}

func (o RollbackTo) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.RollbackTo(s, o.Target)
}

// AdvanceTip moves the submission store's tip forward.
type AdvanceTip struct {
	NewTip submission.Slot
}

func (o AdvanceTip) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.AdvanceTip(s, o.NewTip)
}

// AdvanceFinality moves the submission store's finality horizon forward.
type AdvanceFinality struct {
	NewFinality submission.Slot
}

func (o AdvanceFinality) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.AdvanceFinality(s, o.NewFinality)
}

// Submit records tx as locally submitted, expiring at the given slot.
type Submit struct {
	Tx       submission.Submission
	Expiring submission.Slot
}

func (o Submit) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.Submit(s, o.Tx, o.Expiring)
}

// ObserveAccepted records tx as seen in a block at the given slot.
type ObserveAccepted struct {
	Tx         submission.Submission
	Acceptance submission.Slot
}

func (o ObserveAccepted) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.ObserveAccepted(s, o.Tx, o.Acceptance)
}

// Discard removes tx from the submission store outright.
type Discard struct {
	Tx submission.Submission
}

func (o Discard) apply(ops submission.Operations, s *submission.Store) *submission.Store {
	return ops.Discard(s, o.Tx)
}
