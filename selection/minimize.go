// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// MinimizeFeeExcessForOutput assigns as much of excess as possible to
// output's coin field, one atom at a time, for as long as the marginal
// cost of the next atom is strictly less than the excess remaining after
// assigning it. It assumes CostOfOutput is non-decreasing in the coin
// field, which lets the per-atom walk described in spec.md §4.1 be
// computed by binary search instead of a literal atom-by-atom loop —
// the two are equivalent whenever cost is non-decreasing in the coin, and
// every cost policy in this package's test suite and in the teacher's
// txrules-style fee policies satisfies that.
//
// Returns the residual excess and the (possibly unchanged) output. The
// post-condition from spec.md §8 property 5 holds:
//
//	(output'.coin - output.coin) + (cost(output'.coin) - cost(output.coin)) + excess' = excess
func MinimizeFeeExcessForOutput(params Parameters, excess coin.Coin, output coin.TokenBundle) (coin.Coin, coin.TokenBundle) {
	if excess <= coin.Zero {
		return excess, output
	}

	base := output.Coin
	tokens := output.Tokens
	costBase := params.costOfOutputCoin(tokens, base)

	// f(delta) is the total cost (in ada) of assigning delta atoms of
	// excess to the output: the atoms themselves plus the resulting
	// increase in output cost. f is non-decreasing in delta under the
	// monotonic-cost assumption above, and f(delta) >= delta always (a
	// cost increase is never negative), so delta can never exceed
	// excess.
	f := func(delta int64) int64 {
		c := base + coin.Coin(delta)
		costDelta := params.costOfOutputCoin(tokens, c).Sub(costBase)

		return delta + int64(costDelta)
	}

	lo, hi := int64(0), int64(excess)
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if f(mid) <= int64(excess) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	delta := lo
	newOutput := output.WithCoin(base + coin.Coin(delta))
	excessPrime := excess - coin.Coin(f(delta))

	return excessPrime, newOutput
}
