// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin provides the value algebra underlying the selection engine:
// ada quantities, multi-asset token bundles, and the size metric they are
// measured against. Every type here is an immutable value type; no method
// mutates its receiver.
package coin

import "fmt"

// Coin is a non-negative quantity of ada, denominated in indivisible
// atoms. Following the teacher's pkg/btcunit convention, it is a thin
// wrapper over an int64 rather than a bare alias, so that arithmetic on
// coins can never be confused with arithmetic on an unrelated integer
// quantity.
type Coin int64

// Zero is the additive identity for Coin.
const Zero Coin = 0

// Add returns c + other.
func (c Coin) Add(other Coin) Coin {
	return c + other
}

// Sub returns c - other, saturating at zero rather than going negative.
// Used wherever a caller must never observe a negative ada quantity (the
// core never represents "a wallet owes ada").
func (c Coin) Sub(other Coin) Coin {
	if other >= c {
		return Zero
	}

	return c - other
}

// Distance returns |c - other|, the unsigned gap between two coin
// quantities regardless of which is larger.
func (c Coin) Distance(other Coin) Coin {
	if c >= other {
		return c - other
	}

	return other - c
}

// Compare returns -1, 0 or 1 as c is less than, equal to, or greater than
// other.
func (c Coin) Compare(other Coin) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable rendering of the coin quantity.
func (c Coin) String() string {
	return fmt.Sprintf("%d atoms", int64(c))
}

// TokenQuantity is a non-negative quantity of a single multi-asset token.
type TokenQuantity int64

// ZeroQuantity is the additive identity for TokenQuantity.
const ZeroQuantity TokenQuantity = 0

// Add returns q + other.
func (q TokenQuantity) Add(other TokenQuantity) TokenQuantity {
	return q + other
}

// Sub returns q - other, saturating at zero.
func (q TokenQuantity) Sub(other TokenQuantity) TokenQuantity {
	if other >= q {
		return ZeroQuantity
	}

	return q - other
}

// Compare returns -1, 0 or 1 as q is less than, equal to, or greater than
// other.
func (q TokenQuantity) Compare(other TokenQuantity) int {
	switch {
	case q < other:
		return -1
	case q > other:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable rendering of the token quantity.
func (q TokenQuantity) String() string {
	return fmt.Sprintf("%d", int64(q))
}
