// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletcore is the thin facade spec.md §3 describes: it
// exposes create, addInputToExistingOutput,
// addInputToNewOutputWithoutReclaimingAda, applyPrimitive and
// applyOperation, orchestrating the pure selection and submission cores
// against the persist.Store collaborator under a single lock, in the
// style of wallet/wallet.go's Wallet struct composing addrStore/txStore
// under wallet/state.go's walletState guard.
package walletcore

import (
	"context"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/mariszo/cardano-wallet/coin"
	"github.com/mariszo/cardano-wallet/persist"
	"github.com/mariszo/cardano-wallet/selection"
	"github.com/mariszo/cardano-wallet/submission"
)

// Wallet orchestrates one wallet's migration-selection and
// submission-tracking state against a persist.Store. The zero value is
// not usable; construct with New.
type Wallet struct {
	id     persist.WalletID
	params selection.Parameters
	store  persist.Store
	ops    submission.Operations

	// mu guards the two snapshot fields below. Reads take the read
	// lock. Create computes its new selection before taking the write
	// lock; the addInput* entry points and submission mutations hold the
	// write lock while they compute (and, for submissions, persist) the
	// new snapshot. No snapshot is mutated in place: every mutation
	// swaps in a new value under the lock, per spec.md §5's "mutations
	// produce new snapshots atomically swapped under the lock."
	mu          sync.RWMutex
	selection   *selection.Selection
	submissions *submission.Store

	// AssertInvariants enables a CheckInvariant self-check after every
	// selection mutation, panicking with a go-spew dump of the
	// offending selection on failure. Intended for debug builds and
	// tests; left disabled by default since checkInvariant is
	// documented (spec.md §6) as a diagnostic, not part of normal
	// control flow.
	AssertInvariants bool
}

// New returns a Wallet for id, configured with params and backed by
// store. The submission-store snapshot starts empty; call Load to
// populate it from persistence before relying on submission queries.
func New(id persist.WalletID, params selection.Parameters, store persist.Store) *Wallet {
	return &Wallet{
		id:          id,
		params:      params,
		store:       store,
		ops:         submission.NewOperations(),
		submissions: submission.New(),
	}
}

// Load replaces the in-memory submission snapshot with whatever is
// currently persisted for this wallet.
func (w *Wallet) Load(ctx context.Context) error {
	st, err := w.store.ReadSubmissions(ctx, w.id)
	if err != nil {
		return wrapPersistenceError("ReadSubmissions", err)
	}

	w.mu.Lock()
	w.submissions = st
	w.mu.Unlock()

	return nil
}

// Selection returns the current selection snapshot, or nil if Create has
// never succeeded.
func (w *Wallet) Selection() *selection.Selection {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.selection
}

// Submissions returns the current submission-store snapshot.
func (w *Wallet) Submissions() *submission.Store {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.submissions
}

// Create packs inputs and reward into a fresh selection and installs it
// as the wallet's active selection. Any previously active selection is
// discarded.
func (w *Wallet) Create(_ context.Context, reward coin.Coin, inputs []selection.Input) (*selection.Selection, error) {
	s, err := selection.Create(w.params, reward, inputs)
	if err != nil {
		return nil, wrapSelectionError(err)
	}

	w.assertSelectionInvariant(s)

	w.mu.Lock()
	w.selection = s
	w.mu.Unlock()

	log.Debugf("Created selection for %v with %d inputs, %d outputs",
		w.id, len(s.Inputs), len(s.Outputs))

	return s, nil
}

// AddInputToExistingOutput extends the active selection by merging in
// into one of its existing outputs, and installs the result as the new
// active selection.
func (w *Wallet) AddInputToExistingOutput(_ context.Context, in selection.Input) (*selection.Selection, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selection == nil {
		return nil, errNoActiveSelection
	}

	next, err := selection.AddInputToExistingOutput(w.params, w.selection, in)
	if err != nil {
		return nil, wrapSelectionError(err)
	}

	w.assertSelectionInvariantLocked(next)
	w.selection = next

	return next, nil
}

// AddInputToNewOutputWithoutReclaimingAda extends the active selection by
// appending a brand new output holding exactly in's value, and installs
// the result as the new active selection.
func (w *Wallet) AddInputToNewOutputWithoutReclaimingAda(_ context.Context, in selection.Input) (*selection.Selection, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selection == nil {
		return nil, errNoActiveSelection
	}

	next, err := selection.AddInputToNewOutputWithoutReclaimingAda(w.params, w.selection, in)
	if err != nil {
		return nil, wrapSelectionError(err)
	}

	w.assertSelectionInvariantLocked(next)
	w.selection = next

	return next, nil
}

// ApplyPrimitive applies p to the submission store and persists the
// resulting snapshot atomically.
func (w *Wallet) ApplyPrimitive(ctx context.Context, p submission.Primitive) error {
	return w.mutateSubmissions(ctx, func(s *submission.Store) *submission.Store {
		return s.Apply(p)
	})
}

// ApplyOperation applies the composite intent op to the submission store
// and persists the resulting snapshot atomically.
func (w *Wallet) ApplyOperation(ctx context.Context, op Operation) error {
	return w.mutateSubmissions(ctx, func(s *submission.Store) *submission.Store {
		return op.apply(w.ops, s)
	})
}

// RollbackToCheckpoint resolves target against the persistence
// collaborator's checkpoint history, then rolls the submission store back
// to whatever slot the collaborator actually rolled to (spec.md §3's
// "RollbackTo must return the actual slot rolled to and feed it into
// MoveTip"), persisting the result the same way mutateSubmissions does.
func (w *Wallet) RollbackToCheckpoint(ctx context.Context, target submission.Slot) error {
	rolledTo, err := w.store.RollbackTo(ctx, w.id, target)
	if err != nil {
		return wrapPersistenceError("RollbackTo", err)
	}

	return w.ApplyOperation(ctx, RollbackTo{Target: rolledTo})
}

// mutateSubmissions runs mutate against the current submission snapshot,
// writes the result through the persistence collaborator inside a single
// atomic transaction, and only then swaps it in as the active snapshot —
// so a failed write never leaves the in-memory snapshot ahead of what is
// durable.
func (w *Wallet) mutateSubmissions(ctx context.Context, mutate func(*submission.Store) *submission.Store) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := mutate(w.submissions)

	err := w.store.Atomically(ctx, func(tx persist.Tx) error {
		return tx.WriteSubmissions(ctx, w.id, next)
	})
	if err != nil {
		return wrapPersistenceError("WriteSubmissions", err)
	}

	w.submissions = next

	return nil
}

func (w *Wallet) assertSelectionInvariant(s *selection.Selection) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	w.assertSelectionInvariantLocked(s)
}

// assertSelectionInvariantLocked assumes the caller already holds w.mu.
func (w *Wallet) assertSelectionInvariantLocked(s *selection.Selection) {
	if !w.AssertInvariants {
		return
	}

	if v := selection.CheckInvariant(w.params, s); v != selection.InvariantHolds {
		panic(fmt.Sprintf("walletcore: selection invariant violated (%s):\n%s",
			v, spew.Sdump(s)))
	}
}
