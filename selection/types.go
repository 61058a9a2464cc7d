// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mariszo/cardano-wallet/coin"
)

// InputId opaquely identifies one wallet input, rendered as a
// transaction-hash-and-index pair in the style of the teacher's
// wire.OutPoint (wallet/tx_creator.go's Coin type embeds exactly this
// shape).
type InputId struct {
	TxId  chainhash.Hash
	Index uint32
}

// String returns a human-readable rendering of the input identifier.
func (id InputId) String() string {
	return fmt.Sprintf("%s:%d", id.TxId.String(), id.Index)
}

// Input pairs an InputId with the value it carries.
type Input struct {
	Id     InputId
	Bundle coin.TokenBundle
}

// Selection is the immutable result of packing a set of inputs into a set
// of outputs. Every field is populated by the engine; callers never
// construct a Selection directly other than through Create or one of the
// extension operations.
type Selection struct {
	// Inputs is the non-empty, order-preserving list of inputs consumed
	// by this selection.
	Inputs []Input

	// Outputs is the non-empty list of output bundles produced by this
	// selection.
	Outputs []coin.TokenBundle

	// FeeExcess is ada left over after fees and outputs that cannot be
	// assigned to any output without violating a size or minimum-ada
	// constraint.
	FeeExcess coin.Coin

	// RewardWithdrawal is the ada amount withdrawn from rewards and
	// folded into this selection's inputs.
	RewardWithdrawal coin.Coin

	// Size is the cached total size of the selection.
	Size coin.Size
}

// InputIds returns the identifiers of every input in the selection, in
// order.
func (s *Selection) InputIds() []InputId {
	ids := make([]InputId, len(s.Inputs))
	for i, in := range s.Inputs {
		ids[i] = in.Id
	}

	return ids
}

// TotalInputValue returns the componentwise sum of every input's bundle.
func (s *Selection) TotalInputValue() coin.TokenBundle {
	total := coin.ZeroBundle()
	for _, in := range s.Inputs {
		total = total.Add(in.Bundle)
	}

	return total
}

// TotalOutputValue returns the componentwise sum of every output bundle.
func (s *Selection) TotalOutputValue() coin.TokenBundle {
	return coin.SumBundles(s.Outputs)
}

// TotalFee returns the fee implied by this selection's shape under
// params, per spec.md invariant 1.
func (s *Selection) TotalFee(params Parameters) coin.Coin {
	return params.totalFee(len(s.Inputs), s.Outputs, s.RewardWithdrawal)
}

// clone returns a shallow-safe copy of s suitable for producing a new
// selection without mutating the original; Inputs and Outputs are
// reallocated so appends never alias the source slice's backing array.
func (s *Selection) clone() *Selection {
	out := &Selection{
		Inputs:           append([]Input(nil), s.Inputs...),
		Outputs:          append([]coin.TokenBundle(nil), s.Outputs...),
		FeeExcess:        s.FeeExcess,
		RewardWithdrawal: s.RewardWithdrawal,
		Size:             s.Size,
	}

	return out
}
