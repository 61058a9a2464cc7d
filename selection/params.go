// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package selection implements the migration selection engine: a greedy
// packer that arranges wallet inputs into a non-empty set of transaction
// outputs under bounded size, minimum-ada and fee-policy constraints. It
// is the Go rendering of a UTxO coin-selection algorithm in the style of
// the teacher's wallet/tx_creator.go, generalized from satoshi/weight-unit
// bitcoin accounting to ada/multi-asset accounting.
package selection

import "github.com/mariszo/cardano-wallet/coin"

// Parameters bundles the protocol-derived configuration a selection is
// computed against. Every field is treated as opaque, immutable
// configuration supplied by the host: the engine never mutates a
// Parameters value, matching spec.md §6's "Selection parameters feed".
type Parameters struct {
	// CostOfEmptySelection is the fixed ada cost of a selection carrying
	// zero inputs and zero outputs (the transaction envelope overhead).
	CostOfEmptySelection coin.Coin

	// SizeOfEmptySelection is the fixed size of that same empty
	// envelope.
	SizeOfEmptySelection coin.Size

	// CostOfInput is the marginal ada cost of adding one input.
	CostOfInput coin.Coin

	// SizeOfInput is the marginal size of adding one input.
	SizeOfInput coin.Size

	// CostOfOutput computes the ada cost of including a given output
	// bundle.
	CostOfOutput func(coin.TokenBundle) coin.Coin

	// SizeOfOutput computes the size of including a given output
	// bundle.
	SizeOfOutput func(coin.TokenBundle) coin.Size

	// CostOfRewardWithdrawal computes the ada cost of withdrawing a
	// given reward amount (zero reward must cost zero).
	CostOfRewardWithdrawal func(coin.Coin) coin.Coin

	// SizeOfRewardWithdrawal computes the size of withdrawing a given
	// reward amount.
	SizeOfRewardWithdrawal func(coin.Coin) coin.Size

	// MaximumSizeOfOutput bounds the size of any single output.
	MaximumSizeOfOutput coin.Size

	// MaximumSizeOfSelection bounds the total size of a selection.
	MaximumSizeOfSelection coin.Size

	// MaximumTokenQuantity bounds the quantity of any single asset that
	// may be carried by a single output; larger holdings must be split
	// across outputs.
	MaximumTokenQuantity coin.TokenQuantity

	// MinimumAdaQuantityForOutput computes the minimum ada an output
	// must carry given the set of assets (not quantities) it holds.
	MinimumAdaQuantityForOutput func(coin.TokenMap) coin.Coin
}

// costOfOutputCoin returns the ada cost of an output whose token map is
// tokens and whose coin field is c. Used by the fee-excess minimizer,
// which only ever perturbs the coin field of one output while holding its
// token map fixed.
func (p Parameters) costOfOutputCoin(tokens coin.TokenMap, c coin.Coin) coin.Coin {
	return p.CostOfOutput(coin.NewTokenBundle(c, tokens))
}

// totalFee computes the fee implied by a selection with the given input
// count, output set and reward withdrawal, per spec.md invariant 1.
func (p Parameters) totalFee(inputCount int, outputs []coin.TokenBundle, reward coin.Coin) coin.Coin {
	fee := p.CostOfEmptySelection
	fee = fee.Add(p.CostOfInput * coin.Coin(inputCount))

	for _, o := range outputs {
		fee = fee.Add(p.CostOfOutput(o))
	}

	fee = fee.Add(p.CostOfRewardWithdrawal(reward))

	return fee
}

// outputSizeWithinLimit reports whether output satisfies both the
// per-output size limit and the maximum-token-quantity cap.
func (p Parameters) outputSizeWithinLimit(output coin.TokenBundle) bool {
	if !p.SizeOfOutput(output).LessOrEqual(p.MaximumSizeOfOutput) {
		return false
	}

	return output.Tokens.MaxQuantity().Compare(p.MaximumTokenQuantity) <= 0
}

// outputSatisfiesMinimumAdaQuantity reports whether output carries at
// least the minimum ada required for the assets it holds.
func (p Parameters) outputSatisfiesMinimumAdaQuantity(output coin.TokenBundle) bool {
	return output.Coin >= p.MinimumAdaQuantityForOutput(output.Tokens)
}

// selectionSize computes the cached total size of a selection with the
// given inputs, outputs and reward withdrawal.
func (p Parameters) selectionSize(inputCount int, outputs []coin.TokenBundle, reward coin.Coin) coin.Size {
	size := p.SizeOfEmptySelection
	size = size.Add(p.SizeOfInput.Scale(int64(inputCount)))

	for _, o := range outputs {
		size = size.Add(p.SizeOfOutput(o))
	}

	size = size.Add(p.SizeOfRewardWithdrawal(reward))

	return size
}
