// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

// Primitive is one atomic, total state transition over a Store. Every
// primitive either performs its documented effect or is a silent no-op
// when its preconditions are not met — the store has no error returns
// (spec.md §4.2/§7): an invalid-looking primitive is stale intent, and
// stale intent is dropped, not reported.
type Primitive interface {
	Apply(*Store) *Store
}

// AddSubmission records a newly locally-submitted transaction as
// InSubmission, expiring at the given slot. It is a no-op if Expiring is
// not strictly after the store's current tip, or if a transaction with
// the same id is already tracked in any status (including Expired —
// spec.md §9's first open question resolves resubmission-after-expiry
// as a no-op, not a replacement).
type AddSubmission struct {
	Expiring Slot
	Tx       Submission
}

// Apply implements Primitive.
func (p AddSubmission) Apply(s *Store) *Store {
	id := p.Tx.TxId()

	if p.Expiring.AtOrBefore(s.Tip) {
		return s
	}

	if _, exists := s.transactions[id]; exists {
		return s
	}

	next := s.clone()
	next.transactions[id] = InSubmission{Expiring: p.Expiring, Tx: p.Tx}

	log.Infof("Added submission %v expiring at %v", id, p.Expiring)

	return next
}

// MoveToLedger transitions an existing InSubmission entry for the same
// transaction id to InLedger, recording the slot at which it was
// observed accepted. It is a no-op unless the transaction is currently
// InSubmission and the store's tip satisfies tip < Acceptance <=
// Expiring (the entry's own expiry slot).
type MoveToLedger struct {
	Acceptance Slot
	Tx         Submission
}

// Apply implements Primitive.
func (p MoveToLedger) Apply(s *Store) *Store {
	id := p.Tx.TxId()

	existing, ok := s.transactions[id]
	if !ok {
		return s
	}

	inSub, ok := existing.(InSubmission)
	if !ok {
		return s
	}

	if !(s.Tip.Before(p.Acceptance) && p.Acceptance.AtOrBefore(inSub.Expiring)) {
		return s
	}

	next := s.clone()
	next.transactions[id] = InLedger{
		Expiring:   inSub.Expiring,
		Acceptance: p.Acceptance,
		Tx:         inSub.Tx,
	}

	log.Infof("Moved submission %v to ledger at %v", id, p.Acceptance)

	return next
}

// MoveTip unconditionally advances (or rewinds) the store's tip, clamps
// finality so it never exceeds the new tip, and then rewrites every
// tracked status to reflect the new tip:
//
//   - InLedger whose acceptance slot is now after the tip reverts to
//     InSubmission (rollback resurrection).
//   - InSubmission whose expiry slot is now at or before the tip becomes
//     Expired.
//   - Expired whose expiry slot is now after the tip reverts to
//     InSubmission (rollback of expiry).
type MoveTip struct {
	NewTip Slot
}

// Apply implements Primitive.
func (p MoveTip) Apply(s *Store) *Store {
	next := s.clone()
	next.Tip = p.NewTip
	next.Finality = next.Finality.Min(p.NewTip)

	for id, status := range next.transactions {
		next.transactions[id] = retarget(status, p.NewTip, id)
	}

	return next
}

// retarget computes the status a single transaction should have once the
// store's tip becomes newTip, per MoveTip's three rewrite rules. Statuses
// that match none of the rules are returned unchanged.
func retarget(status TxStatus, newTip Slot, id TxId) TxStatus {
	switch st := status.(type) {
	case InLedger:
		if st.Acceptance.Before(newTip) || st.Acceptance == newTip {
			return st
		}

		log.Warnf("Rolling back %v from ledger to submission: "+
			"acceptance %v is after new tip %v", id, st.Acceptance, newTip)

		return InSubmission{Expiring: st.Expiring, Tx: st.Tx}

	case InSubmission:
		if !st.Expiring.AtOrBefore(newTip) {
			return st
		}

		log.Debugf("Expiring submission %v at tip %v", id, newTip)

		return Expired{Expiring: st.Expiring, Tx: st.Tx}

	case Expired:
		if st.Expiring.AtOrBefore(newTip) {
			return st
		}

		log.Debugf("Un-expiring submission %v: tip rolled back to %v", id, newTip)

		return InSubmission{Expiring: st.Expiring, Tx: st.Tx}

	default:
		return status
	}
}

// MoveFinality advances the store's finality horizon, clamped to
// [finality, tip], and prunes every InLedger whose acceptance slot and
// every Expired whose expiry slot now falls at or below the new
// finality. InSubmission entries are never pruned by finality
// advancement — only by being observed accepted (MoveToLedger, followed
// eventually by finality) or by explicit Forget.
type MoveFinality struct {
	NewFinality Slot
}

// Apply implements Primitive.
func (p MoveFinality) Apply(s *Store) *Store {
	newFinality := p.NewFinality
	if newFinality.Before(s.Finality) {
		newFinality = s.Finality
	}
	if s.Tip.Before(newFinality) {
		newFinality = s.Tip
	}

	next := s.clone()
	next.Finality = newFinality

	for id, status := range next.transactions {
		if prunableAtFinality(status, newFinality) {
			delete(next.transactions, id)

			log.Infof("Pruned %v at finality %v", id, newFinality)
		}
	}

	return next
}

// prunableAtFinality reports whether status should be removed once
// finality reaches newFinality.
func prunableAtFinality(status TxStatus, newFinality Slot) bool {
	switch st := status.(type) {
	case InLedger:
		return st.Acceptance.AtOrBefore(newFinality)
	case Expired:
		return st.Expiring.AtOrBefore(newFinality)
	default:
		return false
	}
}

// Forget unconditionally removes a transaction from the store, in
// whatever status it currently holds (or is a no-op if it is not
// tracked).
type Forget struct {
	Tx Submission
}

// Apply implements Primitive.
func (p Forget) Apply(s *Store) *Store {
	id := p.Tx.TxId()

	if _, ok := s.transactions[id]; !ok {
		return s
	}

	next := s.clone()
	delete(next.transactions, id)

	log.Infof("Forgot %v", id)

	return next
}
