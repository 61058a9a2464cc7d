// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import (
	"github.com/mariszo/cardano-wallet/coin"
)

// InvariantViolation tags which of the five selection invariants
// (spec.md §3) failed. The zero value, InvariantHolds, is never paired
// with a non-nil *Error.
type InvariantViolation int

const (
	// InvariantHolds indicates no violation was found.
	InvariantHolds InvariantViolation = iota

	// InvariantBalanceMismatch indicates invariant 1: inputs +
	// rewardWithdrawal != outputs + totalFee + feeExcess.
	InvariantBalanceMismatch

	// InvariantOutputInvalid indicates invariant 2: some output fails
	// outputSizeWithinLimit or outputSatisfiesMinimumAdaQuantity.
	InvariantOutputInvalid

	// InvariantSelectionTooLarge indicates invariant 3: total size
	// exceeds MaximumSizeOfSelection.
	InvariantSelectionTooLarge

	// InvariantTokenImbalance indicates invariant 4: input and output
	// token totals differ.
	InvariantTokenImbalance

	// InvariantFeeExcessNotMinimal indicates invariant 5: feeExcess
	// could still be reduced by increasing some output's coin for less
	// than it is worth.
	InvariantFeeExcessNotMinimal

	// InvariantEmptyInputsOrOutputs indicates the selection holds no
	// inputs or no outputs, violating the NonEmpty contract.
	InvariantEmptyInputsOrOutputs

	// InvariantSizeCacheStale indicates the cached Size field does not
	// match the size recomputed from the selection's current shape.
	InvariantSizeCacheStale
)

// String renders the violation tag for diagnostics.
func (v InvariantViolation) String() string {
	switch v {
	case InvariantHolds:
		return "holds"
	case InvariantBalanceMismatch:
		return "balance mismatch"
	case InvariantOutputInvalid:
		return "output invalid"
	case InvariantSelectionTooLarge:
		return "selection too large"
	case InvariantTokenImbalance:
		return "token imbalance"
	case InvariantFeeExcessNotMinimal:
		return "fee excess not minimal"
	case InvariantEmptyInputsOrOutputs:
		return "empty inputs or outputs"
	case InvariantSizeCacheStale:
		return "size cache stale"
	default:
		return "unknown invariant violation"
	}
}

// CheckInvariant re-derives every invariant in spec.md §3 from scratch and
// reports the first one found to be violated, or InvariantHolds if the
// selection is sound. It is used by tests and by optional debug-build
// assertions in the facade; it is never part of the normal control flow
// of Create or the extension operations.
func CheckInvariant(params Parameters, s *Selection) InvariantViolation {
	if len(s.Inputs) == 0 || len(s.Outputs) == 0 {
		return InvariantEmptyInputsOrOutputs
	}

	// Invariant 3: total size within bound.
	wantSize := params.selectionSize(len(s.Inputs), s.Outputs, s.RewardWithdrawal)
	if wantSize != s.Size {
		return InvariantSizeCacheStale
	}

	if !s.Size.LessOrEqual(params.MaximumSizeOfSelection) {
		return InvariantSelectionTooLarge
	}

	// Invariant 2: every output individually valid.
	for _, o := range s.Outputs {
		if !params.outputSizeWithinLimit(o) {
			return InvariantOutputInvalid
		}

		if !params.outputSatisfiesMinimumAdaQuantity(o) {
			return InvariantOutputInvalid
		}
	}

	// Invariant 4: exact multi-asset conservation.
	inTokens := coin.NewTokenMap()
	for _, in := range s.Inputs {
		inTokens = inTokens.Add(in.Bundle.Tokens)
	}

	outTokens := coin.NewTokenMap()
	for _, o := range s.Outputs {
		outTokens = outTokens.Add(o.Tokens)
	}

	if !inTokens.Equal(outTokens) {
		return InvariantTokenImbalance
	}

	// Invariant 1: ada balance.
	inAda := coin.Zero
	for _, in := range s.Inputs {
		inAda = inAda.Add(in.Bundle.Coin)
	}

	outAda := coin.Zero
	for _, o := range s.Outputs {
		outAda = outAda.Add(o.Coin)
	}

	totalFee := params.totalFee(len(s.Inputs), s.Outputs, s.RewardWithdrawal)
	lhs := inAda.Add(s.RewardWithdrawal)
	rhs := outAda.Add(totalFee).Add(s.FeeExcess)
	if lhs != rhs {
		return InvariantBalanceMismatch
	}

	// Invariant 5: fee excess minimality. If there is excess left, then
	// bumping ANY output's coin by one atom must cost at least as much
	// as the excess provides; otherwise that output could have absorbed
	// more of the excess and none would remain free.
	if s.FeeExcess > coin.Zero {
		for _, o := range s.Outputs {
			marginal := params.costOfOutputCoin(o.Tokens, o.Coin+1).
				Sub(params.costOfOutputCoin(o.Tokens, o.Coin))
			if marginal < s.FeeExcess {
				return InvariantFeeExcessNotMinimal
			}
		}
	}

	return InvariantHolds
}

// assertInvariant wraps CheckInvariant for internal use by operations
// that want to fail fatally (via *Error) rather than merely report,
// matching spec.md §7's classification of InvariantViolation as "a bug,
// not a user error". No operation in this package calls it; walletcore's
// AssertInvariants guard calls CheckInvariant directly instead.
func assertInvariant(params Parameters, s *Selection) error {
	if v := CheckInvariant(params, s); v != InvariantHolds {
		return errInvariantViolation(v)
	}

	return nil
}
