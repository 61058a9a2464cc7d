// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memstore provides an in-memory persist.Store, the lightweight
// fake this repo's tests wire in wherever a real database would sit —
// the same role the teacher's bwtest package plays for wallet/chain
// integration tests, scaled down to a small fixture package instead of
// a full harness.
package memstore

import (
	"context"
	"errors"
	"sync"

	"github.com/mariszo/cardano-wallet/persist"
	"github.com/mariszo/cardano-wallet/submission"
)

// ErrNotFound is returned when a read targets a wallet or checkpoint
// this store has never seen written.
var ErrNotFound = errors.New("memstore: not found")

// Store is a mutex-guarded, in-memory implementation of persist.Store.
// It performs no real journaling: Atomically simply runs body while
// holding a transaction lock that serializes Atomically calls (separate
// from the data lock each Read*/Write* method takes, so body can call
// those methods on the Store it receives; calls made outside Atomically
// are not held off by it), so a body that returns an error leaves prior
// writes made earlier in the same call untouched (there being nothing to
// roll back at this fidelity) but any writes attempted after the error
// point never happen — the fake matches the interface's failure
// contract "on failure, leaves state unchanged" only in the sense that
// the memstore itself never partially completes a single Read*/Write*
// call.
type Store struct {
	mu sync.Mutex

	// txMu serializes Atomically bodies.
	txMu sync.Mutex

	submissions map[persist.WalletID]*submission.Store
	checkpoints map[persist.WalletID][]persist.Checkpoint
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		submissions: make(map[persist.WalletID]*submission.Store),
		checkpoints: make(map[persist.WalletID][]persist.Checkpoint),
	}
}

// Atomically runs body while holding the store's transaction lock, in
// place of a real journaled transaction. body receives the Store itself,
// which also implements persist.Tx.
func (s *Store) Atomically(_ context.Context, body func(persist.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return body(s)
}

// ReadSubmissions implements persist.SubmissionStore.
func (s *Store) ReadSubmissions(_ context.Context, wallet persist.WalletID) (*submission.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.submissions[wallet]
	if !ok {
		return submission.New(), nil
	}

	return st, nil
}

// WriteSubmissions implements persist.SubmissionStore. It is a full
// replacement, per spec.md §6.
func (s *Store) WriteSubmissions(_ context.Context, wallet persist.WalletID, st *submission.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions[wallet] = st

	return nil
}

// ReadCheckpoint implements persist.CheckpointStore, returning the most
// recently written checkpoint for wallet.
func (s *Store) ReadCheckpoint(_ context.Context, wallet persist.WalletID) (persist.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cps := s.checkpoints[wallet]
	if len(cps) == 0 {
		return persist.Checkpoint{}, ErrNotFound
	}

	return cps[len(cps)-1], nil
}

// PutCheckpoint implements persist.CheckpointStore.
func (s *Store) PutCheckpoint(_ context.Context, wallet persist.WalletID, cp persist.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkpoints[wallet] = append(s.checkpoints[wallet], cp)

	return nil
}

// ListCheckpoints implements persist.CheckpointStore, oldest first.
func (s *Store) ListCheckpoints(_ context.Context, wallet persist.WalletID) ([]persist.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]persist.Checkpoint(nil), s.checkpoints[wallet]...), nil
}

// RollbackTo implements persist.CheckpointStore: it discards every
// checkpoint after the latest one at or before slot, and returns the
// slot of that surviving checkpoint (which may be earlier than
// requested). Rolling back past every known checkpoint returns
// submission.SlotGenesis.
func (s *Store) RollbackTo(_ context.Context, wallet persist.WalletID, slot submission.Slot) (submission.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cps := s.checkpoints[wallet]

	kept := 0
	target := submission.SlotGenesis

	for _, cp := range cps {
		if cp.Slot.AtOrBefore(slot) {
			kept++
			target = cp.Slot
			continue
		}

		break
	}

	s.checkpoints[wallet] = cps[:kept]

	return target, nil
}
