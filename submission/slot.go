// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submission implements the pending-transaction submission
// store: a slot-indexed state machine tracking every locally-submitted
// transaction as it moves between InSubmission, InLedger and Expired,
// grounded on the teacher's wtxmgr package (wtxmgr/tx.go,
// wtxmgr/unconfirmed.go), generalized from a walletdb-backed mined/
// unmined split to an in-memory, slot-indexed status map.
package submission

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Slot is a totally-ordered discrete time coordinate. Both a store's tip
// and its finality horizon are Slot values.
type Slot uint64

// SlotGenesis is the minimum Slot value, the initial tip and finality of
// an empty store.
const SlotGenesis Slot = 0

// Before reports whether s is strictly before other.
func (s Slot) Before(other Slot) bool {
	return s < other
}

// AtOrBefore reports whether s is at or before other.
func (s Slot) AtOrBefore(other Slot) bool {
	return s <= other
}

// Min returns the smaller of s and other.
func (s Slot) Min(other Slot) Slot {
	if s < other {
		return s
	}

	return other
}

// String returns a human-readable rendering of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("slot %d", uint64(s))
}

// TxId identifies a submitted transaction. It reuses the teacher's
// chainhash.Hash identifier type rather than inventing a new fixed-size
// hash, matching coin.AssetId's policy field.
type TxId = chainhash.Hash
