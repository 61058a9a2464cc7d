// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// AssetId identifies a single multi-asset token: a policy (the hash of the
// minting script that authorized it, reusing the teacher's chainhash.Hash
// identifier type rather than inventing a new one) paired with an asset
// name unique under that policy.
//
// AssetId is comparable and totally ordered, so it can be used as a map
// key and sorted deterministically for size estimation and test fixtures.
type AssetId struct {
	Policy chainhash.Hash
	Name   string
}

// NewAssetId constructs an AssetId from a policy hash and an asset name.
func NewAssetId(policy chainhash.Hash, name string) AssetId {
	return AssetId{Policy: policy, Name: name}
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after other.
// Ordering is by policy bytes first, then by asset name, giving every
// TokenMap a single canonical iteration order.
func (a AssetId) Compare(other AssetId) int {
	if c := bytes.Compare(a.Policy[:], other.Policy[:]); c != 0 {
		return c
	}

	switch {
	case a.Name < other.Name:
		return -1
	case a.Name > other.Name:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable rendering of the asset identifier.
func (a AssetId) String() string {
	return fmt.Sprintf("%s.%s", a.Policy.String(), a.Name)
}
