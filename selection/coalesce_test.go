package selection

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mariszo/cardano-wallet/coin"
	"github.com/stretchr/testify/require"
)

func smallSizeParams() Parameters {
	p := trivialParams()
	p.MaximumSizeOfOutput = coin.NewSize(2)
	p.SizeOfOutput = func(b coin.TokenBundle) coin.Size {
		// One unit of size per distinct asset, plus one for the coin
		// field itself, so a bundle holding N assets reports size N+1.
		return coin.NewSize(int64(b.Tokens.Len()) + 1)
	}

	return p
}

func assetBundle(name string, qty coin.TokenQuantity) coin.TokenBundle {
	var policy chainhash.Hash
	policy[0] = name[0]

	id := coin.NewAssetId(policy, name)

	return coin.NewTokenBundle(coin.Zero, coin.TokenMap{id: qty})
}

// TestCoalesceOutputsPreservesValue is testable property 3.
func TestCoalesceOutputsPreservesValue(t *testing.T) {
	t.Parallel()

	params := smallSizeParams()

	xs := []coin.TokenBundle{
		assetBundle("alpha", 1),
		assetBundle("beta", 1),
		assetBundle("charlie", 1),
	}

	out := CoalesceOutputs(params, xs)

	require.LessOrEqual(t, len(out), len(xs))
	require.True(t, coin.SumBundles(out).Equal(coin.SumBundles(xs)))

	for _, o := range out {
		require.True(t, params.outputSizeWithinLimit(o))
	}
}

func TestCoalesceOutputsMergesWhenTheyFit(t *testing.T) {
	t.Parallel()

	params := smallSizeParams()

	xs := []coin.TokenBundle{
		coin.CoinOnly(coin.Coin(10)),
		coin.CoinOnly(coin.Coin(20)),
		coin.CoinOnly(coin.Coin(5)),
	}

	out := CoalesceOutputs(params, xs)

	require.Len(t, out, 1)
	require.True(t, coin.SumBundles(out).Equal(coin.SumBundles(xs)))
}

func TestCoalesceOutputsEmptyInput(t *testing.T) {
	t.Parallel()

	require.Nil(t, CoalesceOutputs(trivialParams(), nil))
}
