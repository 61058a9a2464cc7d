// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// decomposeTokens breaks a token map into a list of elementary bundles
// suitable as input to CoalesceOutputs: every asset whose quantity
// exceeds Parameters.MaximumTokenQuantity is split into capped chunks
// first (spec.md's "larger holdings must be split across outputs"), and
// any chunk that still fails outputSizeWithinLimit on its own is
// recursively halved by splitToFit. The returned bundles all carry a
// zero coin field; callers assign ada separately.
func decomposeTokens(params Parameters, tokens coin.TokenMap) []coin.TokenBundle {
	chunks := make([]coin.TokenBundle, 0, tokens.Len())

	for _, id := range tokens.SortedAssetIds() {
		remaining := tokens.Get(id)
		for remaining > coin.ZeroQuantity {
			qty := remaining
			if params.MaximumTokenQuantity > coin.ZeroQuantity &&
				qty.Compare(params.MaximumTokenQuantity) > 0 {
				qty = params.MaximumTokenQuantity
			}

			chunk := coin.NewTokenBundle(coin.Zero, coin.TokenMap{id: qty})
			chunks = append(chunks, splitToFit(params, chunk)...)
			remaining = remaining.Sub(qty)
		}
	}

	return chunks
}

// splitToFit recursively halves a bundle's token holdings until every
// returned piece satisfies outputSizeWithinLimit, or no further split is
// possible (a single unit of a single asset that still doesn't fit is
// returned as-is; Create will surface that as SelectionFull).
func splitToFit(params Parameters, b coin.TokenBundle) []coin.TokenBundle {
	if params.outputSizeWithinLimit(b) {
		return []coin.TokenBundle{b}
	}

	ids := b.Tokens.SortedAssetIds()

	if len(ids) > 1 {
		mid := len(ids) / 2
		left := coin.NewTokenMap()
		right := coin.NewTokenMap()

		for i, id := range ids {
			if i < mid {
				left[id] = b.Tokens.Get(id)
			} else {
				right[id] = b.Tokens.Get(id)
			}
		}

		out := splitToFit(params, coin.NewTokenBundle(b.Coin, left))
		return append(out, splitToFit(params, coin.NewTokenBundle(coin.Zero, right))...)
	}

	if len(ids) == 1 {
		id := ids[0]
		qty := b.Tokens.Get(id)
		if qty > coin.TokenQuantity(1) {
			half := qty / 2
			left := coin.NewTokenBundle(b.Coin, coin.TokenMap{id: half})
			right := coin.NewTokenBundle(coin.Zero, coin.TokenMap{id: qty - half})

			return append(splitToFit(params, left), splitToFit(params, right)...)
		}
	}

	// Cannot split further: either no tokens at all (an ada-only bundle
	// whose coin field alone makes it too large, which no token split
	// can fix) or a single unit of a single asset.
	return []coin.TokenBundle{b}
}
