// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

// TokenBundle pairs an ada quantity with a multi-asset token map. It is
// the unit of value carried by every input and output in the selection
// engine, and forms an additive monoid: Zero() is the identity, and Add
// is associative and commutative.
type TokenBundle struct {
	Coin   Coin
	Tokens TokenMap
}

// NewTokenBundle constructs a TokenBundle from a coin quantity and a
// token map. A nil token map is normalized to an empty one.
func NewTokenBundle(c Coin, tokens TokenMap) TokenBundle {
	if tokens == nil {
		tokens = NewTokenMap()
	}

	return TokenBundle{Coin: c, Tokens: tokens}
}

// CoinOnly constructs a TokenBundle holding only ada.
func CoinOnly(c Coin) TokenBundle {
	return NewTokenBundle(c, NewTokenMap())
}

// ZeroBundle is the additive identity of the TokenBundle monoid.
func ZeroBundle() TokenBundle {
	return NewTokenBundle(Zero, NewTokenMap())
}

// Add returns the componentwise sum of b and other: coin fields add, and
// token maps add per spec.md's TokenMap monoid.
func (b TokenBundle) Add(other TokenBundle) TokenBundle {
	return TokenBundle{
		Coin:   b.Coin.Add(other.Coin),
		Tokens: b.Tokens.Add(other.Tokens),
	}
}

// SubCoin returns a copy of b with its coin field reduced by amount,
// saturating at zero. The token map is unchanged.
func (b TokenBundle) SubCoin(amount Coin) TokenBundle {
	return TokenBundle{
		Coin:   b.Coin.Sub(amount),
		Tokens: b.Tokens,
	}
}

// AddCoin returns a copy of b with its coin field increased by amount.
// The token map is unchanged.
func (b TokenBundle) AddCoin(amount Coin) TokenBundle {
	return TokenBundle{
		Coin:   b.Coin.Add(amount),
		Tokens: b.Tokens,
	}
}

// WithCoin returns a copy of b with its coin field replaced by c. The
// token map is unchanged.
func (b TokenBundle) WithCoin(c Coin) TokenBundle {
	return TokenBundle{Coin: c, Tokens: b.Tokens}
}

// Equal reports whether b and other hold exactly the same ada quantity
// and exactly the same token quantities.
func (b TokenBundle) Equal(other TokenBundle) bool {
	return b.Coin == other.Coin && b.Tokens.Equal(other.Tokens)
}

// SumBundles folds Add over a non-empty slice of bundles, returning the
// componentwise total. Passing an empty slice returns ZeroBundle.
func SumBundles(bundles []TokenBundle) TokenBundle {
	total := ZeroBundle()
	for _, b := range bundles {
		total = total.Add(b)
	}

	return total
}

// SumTokenMaps folds Add over a slice of token maps.
func SumTokenMaps(maps []TokenMap) TokenMap {
	total := NewTokenMap()
	for _, m := range maps {
		total = total.Add(m)
	}

	return total
}
