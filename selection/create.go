// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// maxFixedPointRounds bounds the fixed-point loop in Create that
// alternates between assigning ada to outputs and recomputing the fee
// those outputs now imply. Cost policies that depend on an output's coin
// field (e.g. a size-in-bytes-of-the-encoded-integer cost) converge in
// one or two rounds in practice; this is a generous ceiling, not a tuned
// constant.
const maxFixedPointRounds = 8

// Create packs inputs (required non-empty) and a reward withdrawal into a
// Selection, following spec.md §4.1's greedy creation algorithm:
//
//  1. Start from a single output holding the total token value of the
//     inputs, decomposed and re-coalesced into the smallest number of
//     outputs that each satisfy outputSizeWithinLimit.
//  2. Assign the minimum required ada to every output, spend the total
//     fee those outputs and inputs imply, and push any remaining ada
//     into the last output via MinimizeFeeExcessForOutput.
//  3. Fail with ErrAdaInsufficient if the ada supplied can never cover
//     fees and minimum-ada requirements, or with ErrSelectionFull if an
//     output still fails outputSizeWithinLimit or the minimal feasible
//     arrangement still exceeds MaximumSizeOfSelection.
func Create(params Parameters, reward coin.Coin, inputs []Input) (*Selection, error) {
	if len(inputs) == 0 {
		panic("selection: Create requires a non-empty input sequence")
	}

	totalValue := coin.ZeroBundle()
	for _, in := range inputs {
		totalValue = totalValue.Add(in.Bundle)
	}

	totalAda := totalValue.Coin.Add(reward)

	elementary := decomposeTokens(params, totalValue.Tokens)
	if len(elementary) == 0 {
		elementary = []coin.TokenBundle{coin.ZeroBundle()}
	}

	outputs := CoalesceOutputs(params, elementary)

	feeExcess, err := assignAda(params, len(inputs), reward, totalAda, outputs)
	if err != nil {
		return nil, err
	}

	for _, o := range outputs {
		if !params.outputSizeWithinLimit(o) {
			return nil, ErrSelectionFull(params.MaximumSizeOfOutput, params.SizeOfOutput(o))
		}
	}

	size := params.selectionSize(len(inputs), outputs, reward)
	if !size.LessOrEqual(params.MaximumSizeOfSelection) {
		return nil, ErrSelectionFull(params.MaximumSizeOfSelection, size)
	}

	return &Selection{
		Inputs:           append([]Input(nil), inputs...),
		Outputs:          outputs,
		FeeExcess:        feeExcess,
		RewardWithdrawal: reward,
		Size:             size,
	}, nil
}

// assignAda mutates outputs in place, giving each its minimum required
// ada and folding whatever is left over into the last output as fee
// excess. It returns the final fee excess, or ErrAdaInsufficient if
// totalAda cannot cover fees plus every output's minimum-ada floor.
func assignAda(
	params Parameters,
	inputCount int,
	reward coin.Coin,
	totalAda coin.Coin,
	outputs []coin.TokenBundle,
) (coin.Coin, error) {
	feeExcess := coin.Zero

	for round := 0; round < maxFixedPointRounds; round++ {
		minAdaTotal := coin.Zero
		for i, o := range outputs {
			minAda := params.MinimumAdaQuantityForOutput(o.Tokens)
			outputs[i] = o.WithCoin(minAda)
			minAdaTotal = minAdaTotal.Add(minAda)
		}

		fee := params.totalFee(inputCount, outputs, reward)
		required := fee.Add(minAdaTotal)
		if totalAda < required {
			return coin.Zero, ErrAdaInsufficient()
		}

		residual := totalAda.Sub(required)

		lastIdx := len(outputs) - 1
		newExcess, newLast := MinimizeFeeExcessForOutput(params, residual, outputs[lastIdx])

		previousCoin := outputs[lastIdx].Coin
		outputs[lastIdx] = newLast
		feeExcess = newExcess

		// Recomputing the fee after bumping the last output's coin may
		// change the fee itself (if CostOfOutput depends on coin), which
		// would make minAdaTotal/fee stale. If the coin assignment did
		// not move, or moved but the fee this induces is unchanged, we
		// have converged.
		if newLast.Coin == previousCoin {
			break
		}

		nextFee := params.totalFee(inputCount, outputs, reward)
		if nextFee == fee {
			break
		}
	}

	return feeExcess, nil
}
