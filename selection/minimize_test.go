package selection

import (
	"testing"

	"github.com/mariszo/cardano-wallet/coin"
	"github.com/stretchr/testify/require"
)

// TestMinimizeFeeExcessContract is testable property 5, checked against
// a flat (zero marginal cost) output cost policy and a non-trivial one
// where cost grows with the output's coin field.
func TestMinimizeFeeExcessContract(t *testing.T) {
	t.Parallel()

	t.Run("flat cost", func(t *testing.T) {
		t.Parallel()

		params := trivialParams()
		output := coin.CoinOnly(coin.Coin(10))

		excessPrime, outputPrime := MinimizeFeeExcessForOutput(params, coin.Coin(37), output)

		require.LessOrEqual(t, int64(excessPrime), int64(37))
		require.GreaterOrEqual(t, outputPrime.Coin, output.Coin)

		costBefore := params.costOfOutputCoin(output.Tokens, output.Coin)
		costAfter := params.costOfOutputCoin(outputPrime.Tokens, outputPrime.Coin)
		lhs := (outputPrime.Coin - output.Coin) + costAfter.Sub(costBefore) + excessPrime
		require.Equal(t, coin.Coin(37), lhs)
	})

	t.Run("cost increases every 10 atoms", func(t *testing.T) {
		t.Parallel()

		params := trivialParams()
		params.CostOfOutput = func(b coin.TokenBundle) coin.Coin {
			return coin.Coin(int64(b.Coin) / 10)
		}

		output := coin.CoinOnly(coin.Coin(0))
		excess := coin.Coin(50)

		excessPrime, outputPrime := MinimizeFeeExcessForOutput(params, excess, output)

		require.LessOrEqual(t, int64(excessPrime), int64(excess))
		require.GreaterOrEqual(t, outputPrime.Coin, output.Coin)

		costBefore := params.costOfOutputCoin(output.Tokens, output.Coin)
		costAfter := params.costOfOutputCoin(outputPrime.Tokens, outputPrime.Coin)
		lhs := (outputPrime.Coin - output.Coin) + costAfter.Sub(costBefore) + excessPrime
		require.Equal(t, excess, lhs)

		if excessPrime > coin.Zero {
			marginal := params.costOfOutputCoin(outputPrime.Tokens, outputPrime.Coin+1).
				Sub(params.costOfOutputCoin(outputPrime.Tokens, outputPrime.Coin))
			require.GreaterOrEqual(t, marginal, excessPrime)
		}
	})
}

func TestMinimizeFeeExcessForOutputNoExcess(t *testing.T) {
	t.Parallel()

	params := trivialParams()
	output := coin.CoinOnly(coin.Coin(10))

	excessPrime, outputPrime := MinimizeFeeExcessForOutput(params, coin.Zero, output)
	require.Equal(t, coin.Zero, excessPrime)
	require.Equal(t, output, outputPrime)
}
