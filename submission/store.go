// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

// Store is the per-wallet submission store: a slot-indexed map from
// transaction identity to lifecycle status, plus the tip and finality
// slots the store's pruning and transition rules are measured against.
// A Store is an immutable snapshot; every primitive application returns
// a new Store rather than mutating the receiver, so concurrent readers
// of a snapshot never observe a torn state (spec.md §5).
type Store struct {
	// Finality is the latest slot at which on-chain state is treated
	// as irreversible. Finality <= Tip always holds.
	Finality Slot

	// Tip is the latest slot the wallet has observed on-chain.
	Tip Slot

	transactions map[TxId]TxStatus
}

// New returns an empty Store with tip and finality both at SlotGenesis.
func New() *Store {
	return &Store{
		Finality:     SlotGenesis,
		Tip:          SlotGenesis,
		transactions: make(map[TxId]TxStatus),
	}
}

// Lookup returns the status of id, and whether it is present at all.
func (s *Store) Lookup(id TxId) (TxStatus, bool) {
	status, ok := s.transactions[id]
	return status, ok
}

// Len returns the number of transactions currently tracked.
func (s *Store) Len() int {
	return len(s.transactions)
}

// All returns every tracked status, in no particular order. The returned
// slice is a fresh copy; mutating it does not affect the store.
func (s *Store) All() []TxStatus {
	out := make([]TxStatus, 0, len(s.transactions))
	for _, status := range s.transactions {
		out = append(out, status)
	}

	return out
}

// Apply returns the Store that results from applying p to s. s itself is
// never mutated; callers replace their reference with the result (or
// discard it, if p turned out to be a no-op and Apply returned s
// unchanged).
func (s *Store) Apply(p Primitive) *Store {
	return p.Apply(s)
}

// clone returns a copy-on-write snapshot of s: a new Store value sharing
// no mutable state with s, ready for one primitive's modifications to be
// applied to it.
func (s *Store) clone() *Store {
	txs := make(map[TxId]TxStatus, len(s.transactions))
	for id, status := range s.transactions {
		txs[id] = status
	}

	return &Store{
		Finality:     s.Finality,
		Tip:          s.Tip,
		transactions: txs,
	}
}
