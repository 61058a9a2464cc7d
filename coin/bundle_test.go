package coin

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func testAsset(t *testing.T, name string) AssetId {
	t.Helper()

	var policy chainhash.Hash
	policy[0] = name[0]

	return NewAssetId(policy, name)
}

func TestTokenMapAddPrunesZero(t *testing.T) {
	t.Parallel()

	a := testAsset(t, "alpha")

	m := NewTokenMap()
	m[a] = TokenQuantity(5)

	// Subtracting the entire balance must drop the key, not leave a
	// zero-quantity entry behind.
	result := m.Sub(TokenMap{a: TokenQuantity(5)})
	require.True(t, result.IsEmpty())
	require.Equal(t, 0, result.Len())
}

func TestTokenMapEqualDoesNotIgnoreStrayZeroKeys(t *testing.T) {
	t.Parallel()

	a := testAsset(t, "alpha")

	empty := NewTokenMap()
	withStrayZero := TokenMap{a: ZeroQuantity}

	// Equal compares by value, but the invariant is that Add/Sub never
	// produce a stray zero key in the first place.
	require.False(t, empty.Equal(withStrayZero))
	require.Equal(t, 1, withStrayZero.Len())
}

func TestTokenMapMaxQuantity(t *testing.T) {
	t.Parallel()

	a, b := testAsset(t, "alpha"), testAsset(t, "beta")

	m := TokenMap{a: TokenQuantity(3), b: TokenQuantity(9)}
	require.Equal(t, TokenQuantity(9), m.MaxQuantity())
	require.Equal(t, ZeroQuantity, NewTokenMap().MaxQuantity())
}

func TestTokenMapSortedAssetIdsDeterministic(t *testing.T) {
	t.Parallel()

	a, b, c := testAsset(t, "alpha"), testAsset(t, "beta"), testAsset(t, "charlie")
	m := TokenMap{c: 1, a: 1, b: 1}

	first := m.SortedAssetIds()
	second := m.SortedAssetIds()
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		require.Negative(t, first[i-1].Compare(first[i]))
	}
}

func TestTokenBundleAddIsAssociativeAndCommutative(t *testing.T) {
	t.Parallel()

	a := testAsset(t, "alpha")

	x := NewTokenBundle(Coin(10), TokenMap{a: 1})
	y := NewTokenBundle(Coin(20), TokenMap{a: 2})
	z := NewTokenBundle(Coin(30), TokenMap{a: 3})

	require.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
	require.True(t, x.Add(y).Equal(y.Add(x)))
}

func TestTokenBundleZeroIsIdentity(t *testing.T) {
	t.Parallel()

	a := testAsset(t, "alpha")
	x := NewTokenBundle(Coin(10), TokenMap{a: 1})

	require.True(t, x.Add(ZeroBundle()).Equal(x))
}

func TestSumBundlesMatchesPairwiseFold(t *testing.T) {
	t.Parallel()

	a := testAsset(t, "alpha")
	bundles := []TokenBundle{
		CoinOnly(Coin(10)),
		NewTokenBundle(Coin(5), TokenMap{a: 2}),
		CoinOnly(Coin(1)),
	}

	want := ZeroBundle()
	for _, b := range bundles {
		want = want.Add(b)
	}

	require.True(t, want.Equal(SumBundles(bundles)))
}
