// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// ReclaimAdaResult is the successful outcome of ReclaimAda: a new set of
// outputs with the same total token value as the input, plus the ada and
// size this freed up.
type ReclaimAdaResult struct {
	// ReducedOutputs is the new output set. Its length never exceeds
	// len(outputs).
	ReducedOutputs []coin.TokenBundle

	// CostReduction is how much less total output fee the new output
	// set costs than the original.
	CostReduction coin.Coin

	// SizeReduction is how much smaller the new output set is than the
	// original.
	SizeReduction coin.Size
}

// excessAdaForOutput returns the ada an output holds above its own
// minimum-ada floor — the amount reclaimAda could free from it without
// violating invariant 2, before accounting for any cost savings.
func excessAdaForOutput(params Parameters, o coin.TokenBundle) coin.Coin {
	return o.Coin.Sub(params.MinimumAdaQuantityForOutput(o.Tokens))
}

// ReclaimAda attempts to free at least target ada from outputs, per
// spec.md §4.1, by (i) reducing each output's coin down to its
// minimum-ada floor, and (ii) merging outputs via CoalesceOutputs when
// doing so frees additional cost. It reports success (true) together with
// the new output set if at least target ada was freed, and failure
// (false) with a nil result otherwise. outputs itself is never modified.
//
// target = 0 is trivially successful with no changes, per the spec's
// documented resolution of that open question.
func ReclaimAda(params Parameters, target coin.Coin, outputs []coin.TokenBundle) (*ReclaimAdaResult, bool) {
	if target <= coin.Zero {
		return &ReclaimAdaResult{
			ReducedOutputs: append([]coin.TokenBundle(nil), outputs...),
			CostReduction:  coin.Zero,
			SizeReduction:  coin.ZeroSize,
		}, true
	}

	costBefore := sumOutputCost(params, outputs)
	sizeBefore := sumOutputSize(params, outputs)
	coinBefore := sumOutputCoin(outputs)

	// Phase 1: push every output's coin down to its minimum-ada floor.
	reduced := make([]coin.TokenBundle, len(outputs))
	for i, o := range outputs {
		floor := params.MinimumAdaQuantityForOutput(o.Tokens)
		reduced[i] = o.WithCoin(floor)
	}

	if freed(params, target, coinBefore, costBefore, reduced) {
		return reclaimResult(params, coinBefore, costBefore, sizeBefore, reduced), true
	}

	// Phase 2: merging outputs may free additional fixed per-output
	// cost and, by combining token holdings, may also lower the
	// combined minimum-ada floor.
	merged := CoalesceOutputs(params, reduced)
	for i, o := range merged {
		floor := params.MinimumAdaQuantityForOutput(o.Tokens)
		merged[i] = o.WithCoin(floor)
	}

	if freed(params, target, coinBefore, costBefore, merged) {
		return reclaimResult(params, coinBefore, costBefore, sizeBefore, merged), true
	}

	return nil, false
}

// freed reports whether reducing to candidate frees at least target ada
// relative to the original coin/cost totals: the ada no longer tied up
// in output coins, plus the ada no longer owed in output fees.
func freed(params Parameters, target, coinBefore, costBefore coin.Coin, candidate []coin.TokenBundle) bool {
	coinAfter := sumOutputCoin(candidate)
	costAfter := sumOutputCost(params, candidate)

	reclaimed := coinBefore.Sub(coinAfter).Add(costBefore.Sub(costAfter))

	return reclaimed >= target
}

func reclaimResult(params Parameters, coinBefore, costBefore coin.Coin, sizeBefore coin.Size, candidate []coin.TokenBundle) *ReclaimAdaResult {
	return &ReclaimAdaResult{
		ReducedOutputs: candidate,
		CostReduction:  costBefore.Sub(sumOutputCost(params, candidate)),
		SizeReduction:  sizeBefore.Sub(sumOutputSize(params, candidate)),
	}
}

func sumOutputCoin(outputs []coin.TokenBundle) coin.Coin {
	total := coin.Zero
	for _, o := range outputs {
		total = total.Add(o.Coin)
	}

	return total
}

func sumOutputCost(params Parameters, outputs []coin.TokenBundle) coin.Coin {
	total := coin.Zero
	for _, o := range outputs {
		total = total.Add(params.CostOfOutput(o))
	}

	return total
}

func sumOutputSize(params Parameters, outputs []coin.TokenBundle) coin.Size {
	total := coin.ZeroSize
	for _, o := range outputs {
		total = total.Add(params.SizeOfOutput(o))
	}

	return total
}
