package selection

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mariszo/cardano-wallet/coin"
)

// trivialParams builds the parameter set used by spec.md's literal end-to-
// end scenarios S1-S3: a fixed per-input/per-empty-selection ada cost, a
// flat size model, zero-cost outputs and reward withdrawals, and a flat
// minimum-ada-per-output of 2.
func trivialParams() Parameters {
	return Parameters{
		CostOfEmptySelection: coin.Coin(10),
		SizeOfEmptySelection: coin.NewSize(5),
		CostOfInput:          coin.Coin(1),
		SizeOfInput:          coin.NewSize(1),
		CostOfOutput: func(coin.TokenBundle) coin.Coin {
			return coin.Zero
		},
		SizeOfOutput: func(coin.TokenBundle) coin.Size {
			return coin.NewSize(1)
		},
		CostOfRewardWithdrawal: func(coin.Coin) coin.Coin {
			return coin.Zero
		},
		SizeOfRewardWithdrawal: func(coin.Coin) coin.Size {
			return coin.ZeroSize
		},
		MaximumSizeOfOutput:    coin.NewSize(100),
		MaximumSizeOfSelection: coin.NewSize(1000),
		MaximumTokenQuantity:   coin.TokenQuantity(1 << 30),
		MinimumAdaQuantityForOutput: func(coin.TokenMap) coin.Coin {
			return coin.Coin(2)
		},
	}
}

func testInputId(b byte) InputId {
	var h chainhash.Hash
	h[0] = b

	return InputId{TxId: h, Index: 0}
}

func testInput(b byte, amount coin.Coin) Input {
	return Input{
		Id:     testInputId(b),
		Bundle: coin.CoinOnly(amount),
	}
}
