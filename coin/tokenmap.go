// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import "sort"

// TokenMap is a finite mapping from AssetId to TokenQuantity. The zero
// value is the empty map. The invariant maintained by every constructor
// and combinator in this file is that a key is never present with a zero
// quantity — Add and Sub always prune zeroed entries so that two TokenMaps
// holding the same assets are == comparable key-for-key via Equal without
// having to special-case stray zero entries.
type TokenMap map[AssetId]TokenQuantity

// NewTokenMap returns an empty TokenMap.
func NewTokenMap() TokenMap {
	return TokenMap{}
}

// Clone returns a deep copy of m.
func (m TokenMap) Clone() TokenMap {
	out := make(TokenMap, len(m))
	for id, qty := range m {
		out[id] = qty
	}

	return out
}

// Get returns the quantity held for id, or ZeroQuantity if absent.
func (m TokenMap) Get(id AssetId) TokenQuantity {
	return m[id]
}

// Add returns the componentwise sum of m and other. The receiver is left
// unmodified.
func (m TokenMap) Add(other TokenMap) TokenMap {
	out := m.Clone()
	for id, qty := range other {
		sum := out[id].Add(qty)
		if sum == ZeroQuantity {
			delete(out, id)
			continue
		}

		out[id] = sum
	}

	return out
}

// Sub returns the componentwise, saturating difference m - other. Any
// asset that would go negative is clamped at zero and dropped from the
// result, preserving the no-zero-keys invariant.
func (m TokenMap) Sub(other TokenMap) TokenMap {
	out := m.Clone()
	for id, qty := range other {
		diff := out[id].Sub(qty)
		if diff == ZeroQuantity {
			delete(out, id)
			continue
		}

		out[id] = diff
	}

	return out
}

// Equal reports whether m and other hold exactly the same assets in
// exactly the same quantities.
func (m TokenMap) Equal(other TokenMap) bool {
	if len(m) != len(other) {
		return false
	}

	for id, qty := range m {
		if other[id] != qty {
			return false
		}
	}

	return true
}

// IsEmpty reports whether m holds no assets.
func (m TokenMap) IsEmpty() bool {
	return len(m) == 0
}

// Len returns the number of distinct assets held.
func (m TokenMap) Len() int {
	return len(m)
}

// MaxQuantity returns the largest single asset quantity held in m, and
// ZeroQuantity if m is empty. Used by outputSizeWithinLimit-adjacent
// checks that must split outputs exceeding a maximum per-asset quantity.
func (m TokenMap) MaxQuantity() TokenQuantity {
	max := ZeroQuantity
	for _, qty := range m {
		if qty.Compare(max) > 0 {
			max = qty
		}
	}

	return max
}

// SortedAssetIds returns the assets held in m in their canonical
// (AssetId.Compare) order, giving size estimation and test fixtures a
// deterministic iteration order over an otherwise unordered Go map.
func (m TokenMap) SortedAssetIds() []AssetId {
	ids := make([]AssetId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})

	return ids
}
