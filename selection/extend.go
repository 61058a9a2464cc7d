// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// AddInputToExistingOutput merges a new input into the first existing
// output whose merged size (and token-quantity cap) still fits within
// Parameters, per spec.md §4.1. The additional ada cost this implies (one
// more input, plus any change in the absorbing output's own cost) is paid
// out of the selection's current fee excess together with the merged
// output's ada above its minimum-ada floor; if those cannot cover it the
// operation fails with ErrAdaInsufficient. Whatever is left over is
// re-minimized into the merged output so the result still satisfies
// invariant 5 (no free excess remains).
func AddInputToExistingOutput(params Parameters, s *Selection, in Input) (*Selection, error) {
	var lastRequiredSize coin.Size

	for i, o := range s.Outputs {
		merged := o.Add(in.Bundle)
		if !params.outputSizeWithinLimit(merged) {
			lastRequiredSize = params.SizeOfOutput(merged)
			continue
		}

		floor := params.MinimumAdaQuantityForOutput(merged.Tokens)
		base := merged.WithCoin(floor)
		available := s.FeeExcess.Add(merged.Coin).Add(params.CostOfOutput(o))
		required := floor.Add(params.CostOfOutput(base)).Add(params.CostOfInput)
		if available < required {
			return nil, ErrAdaInsufficient()
		}

		excess, finalOutput := MinimizeFeeExcessForOutput(params, available.Sub(required), base)
		if !params.outputSatisfiesMinimumAdaQuantity(finalOutput) {
			return nil, ErrAdaInsufficient()
		}

		ns := s.clone()
		ns.Inputs = append(ns.Inputs, in)
		ns.Outputs[i] = finalOutput
		ns.FeeExcess = excess
		ns.Size = params.selectionSize(len(ns.Inputs), ns.Outputs, ns.RewardWithdrawal)

		if !ns.Size.LessOrEqual(params.MaximumSizeOfSelection) {
			return nil, ErrSelectionFull(params.MaximumSizeOfSelection, ns.Size)
		}

		return ns, nil
	}

	return nil, ErrSelectionFull(params.MaximumSizeOfOutput, lastRequiredSize)
}

// AddInputToNewOutputWithoutReclaimingAda appends a new output holding
// exactly the new input's tokens. The output's minimum-ada requirement
// must be covered by the new input's own coin — this operation never
// reduces any existing output's coin to fund the new one (that is
// reclaimAda's job, not this operation's). The additional fee this new
// output and input impose is paid from the new input's coin together
// with the selection's existing fee excess, and whatever remains is
// re-minimized into the new output so invariant 5 continues to hold.
func AddInputToNewOutputWithoutReclaimingAda(params Parameters, s *Selection, in Input) (*Selection, error) {
	newOutput := in.Bundle
	if !params.outputSatisfiesMinimumAdaQuantity(newOutput) {
		return nil, ErrAdaInsufficient()
	}

	if !params.outputSizeWithinLimit(newOutput) {
		return nil, ErrSelectionFull(params.MaximumSizeOfOutput, params.SizeOfOutput(newOutput))
	}

	floor := params.MinimumAdaQuantityForOutput(newOutput.Tokens)
	base := newOutput.WithCoin(floor)
	available := s.FeeExcess.Add(newOutput.Coin)
	required := floor.Add(params.CostOfOutput(base)).Add(params.CostOfInput)
	if available < required {
		return nil, ErrAdaInsufficient()
	}

	excess, finalOutput := MinimizeFeeExcessForOutput(params, available.Sub(required), base)

	ns := s.clone()
	ns.Inputs = append(ns.Inputs, in)
	ns.Outputs = append(ns.Outputs, finalOutput)
	ns.FeeExcess = excess
	ns.Size = params.selectionSize(len(ns.Inputs), ns.Outputs, ns.RewardWithdrawal)

	if !ns.Size.LessOrEqual(params.MaximumSizeOfSelection) {
		return nil, ErrSelectionFull(params.MaximumSizeOfSelection, ns.Size)
	}

	return ns, nil
}
