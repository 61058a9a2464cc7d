// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

// Operations composes primitives into the higher-level intents the
// facade actually wants to express (spec.md §4.2's "composite operation
// layer"). Every method here guarantees that the Store it returns
// satisfies the same invariants a sequence of individually-applied
// primitives would: finality <= tip, and no transaction sitting in a
// status its slot fields forbid relative to tip/finality.
//
// Operations itself holds no state; it is a zero-size dispatcher kept as
// a named type so the facade has a stable collaborator to depend on (and
// a seam for a future instrumented or batching implementation).
type Operations struct{}

// NewOperations returns the default Operations dispatcher.
func NewOperations() Operations {
	return Operations{}
}

// RollbackTo applies the composite "roll the chain back to slot target"
// intent: move the tip to target, which cascades the InLedger/Expired
// resurrection rules from MoveTip, and then re-clamp finality so it
// never ends up ahead of the new tip. For a genuine rollback target <
// tip this second step is a no-op (MoveTip already clamps finality down
// via Min), but composing it explicitly keeps RollbackTo correct even
// if a caller passes a target ahead of the current tip.
func (Operations) RollbackTo(s *Store, target Slot) *Store {
	next := s.Apply(MoveTip{NewTip: target})
	return next.Apply(MoveFinality{NewFinality: next.Finality})
}

// AdvanceTip applies the composite "new block observed at newTip"
// intent: it applies MoveTip and nothing else. Finality is left where it
// is; callers wanting finality to track the tip call AdvanceFinality
// separately.
func (Operations) AdvanceTip(s *Store, newTip Slot) *Store {
	return s.Apply(MoveTip{NewTip: newTip})
}

// AdvanceFinality applies MoveFinality and is provided for symmetry with
// AdvanceTip and RollbackTo; it performs no additional fix-up because
// MoveFinality already clamps to [finality, tip] and prunes in one pass.
func (Operations) AdvanceFinality(s *Store, newFinality Slot) *Store {
	return s.Apply(MoveFinality{NewFinality: newFinality})
}

// Submit applies the composite "locally submit a new transaction"
// intent: record it InSubmission expiring at the given slot. Exposed as
// a named Operations method (rather than requiring callers to construct
// AddSubmission directly) so the facade's entry points read as intents,
// not primitive names.
func (Operations) Submit(s *Store, tx Submission, expiring Slot) *Store {
	return s.Apply(AddSubmission{Expiring: expiring, Tx: tx})
}

// ObserveAccepted applies the composite "transaction seen in a block at
// acceptance" intent.
func (Operations) ObserveAccepted(s *Store, tx Submission, acceptance Slot) *Store {
	return s.Apply(MoveToLedger{Acceptance: acceptance, Tx: tx})
}

// Discard applies Forget, removing tx from the store regardless of its
// current status.
func (Operations) Discard(s *Store, tx Submission) *Store {
	return s.Apply(Forget{Tx: tx})
}
