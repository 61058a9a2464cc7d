// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package persist defines the abstract persistence collaborator the
// wallet facade depends on: an interface-segregated split in the style
// of the teacher's wallet/internal/db.Store (WalletStore/AccountStore/
// AddressStore/TxStore/UTXOStore), specialized to this spec's two
// pieces of durable state — the submission store and checkpoint
// history — plus the atomic-transaction boundary both are written
// through.
//
// Every method here takes a context.Context first argument. The
// teacher's own wtxmgr.TxStore doc comment flags the lack of one as a
// known shortcoming of its "temporary solution"; this package does not
// repeat that shortcoming.
package persist

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mariszo/cardano-wallet/submission"
)

// WalletID identifies the wallet a piece of persisted state belongs to.
// Opaque to this package; hosts are free to use a database primary key,
// a UUID string, or anything else comparable.
type WalletID string

// Checkpoint is a durable snapshot of chain-sync progress: the slot and
// block identity the wallet had fully processed as of this checkpoint.
// Its internal shape is otherwise opaque to the core, per spec.md §6's
// "opaque to this spec other than..." framing of the checkpoint methods.
type Checkpoint struct {
	Slot     submission.Slot
	BlockId  chainhash.Hash
	ParentId chainhash.Hash
}

// Store is the top-level interface the facade depends on, combining
// every persistence sub-interface it needs.
type Store interface {
	Atomic
	SubmissionStore
	CheckpointStore
}

// Tx is the handle a body function passed to Atomic.Atomically receives.
// It exposes the same sub-interfaces as Store so that reads and writes
// performed inside one atomic body are visible to each other, and either
// all commit or none do.
type Tx interface {
	SubmissionStore
	CheckpointStore
}

// Atomic wraps a batch of persistence operations in a single journaled
// transaction, the Go rendering of spec.md §6's `atomically(body) → R`:
// on failure the underlying state is left unchanged, matching
// walletdb.Update's callback-scoped read-write transaction convention
// used throughout the teacher's wtxmgr and wallet/db_ops.go.
type Atomic interface {
	Atomically(ctx context.Context, body func(Tx) error) error
}

// SubmissionStore persists one wallet's submission.Store as a single
// unit: writes are full replacements (spec.md §6), leaving any
// log-structuring or diffing to the implementation.
type SubmissionStore interface {
	ReadSubmissions(ctx context.Context, wallet WalletID) (*submission.Store, error)
	WriteSubmissions(ctx context.Context, wallet WalletID, s *submission.Store) error
}

// CheckpointStore persists chain-sync checkpoints and realizes rollback
// requests. RollbackTo must return the actual slot rolled to — which may
// be earlier than requested if no checkpoint exists exactly at the
// requested slot — and the facade must feed that returned slot into
// submission.MoveTip, never the originally requested one.
type CheckpointStore interface {
	ReadCheckpoint(ctx context.Context, wallet WalletID) (Checkpoint, error)
	PutCheckpoint(ctx context.Context, wallet WalletID, cp Checkpoint) error
	ListCheckpoints(ctx context.Context, wallet WalletID) ([]Checkpoint, error)
	RollbackTo(ctx context.Context, wallet WalletID, slot submission.Slot) (submission.Slot, error)
}
