// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selection

import "github.com/mariszo/cardano-wallet/coin"

// CoalesceOutputs folds a non-empty sequence of output bundles into the
// smallest number of bundles that each satisfy outputSizeWithinLimit,
// preserving their total value exactly. It assumes every individual
// bundle in xs already satisfies outputSizeWithinLimit on its own —
// splitToFit (decompose.go) is responsible for establishing that
// precondition before a bundle ever reaches the fold.
//
// The fold is a simple greedy left-fold: the current accumulator bundle
// absorbs the next bundle in xs whenever the merged result still fits;
// otherwise the accumulator is closed off as a finished output and a new
// accumulator starts from that next bundle. Ties (xs in any order) are
// broken by input order, so the result is deterministic for a given xs.
func CoalesceOutputs(params Parameters, xs []coin.TokenBundle) []coin.TokenBundle {
	if len(xs) == 0 {
		return nil
	}

	outputs := make([]coin.TokenBundle, 0, len(xs))
	current := xs[0]

	for _, next := range xs[1:] {
		merged := current.Add(next)
		if params.outputSizeWithinLimit(merged) {
			current = merged
			continue
		}

		outputs = append(outputs, current)
		current = next
	}

	return append(outputs, current)
}
