package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(1, 0, "IOV"),
		NewCoin(2, 0, "ETH"),
		NewCoin(3, 0, "IOV"),
		NewCoin(0, 0, "BTC"),
	)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "ETH", cs[0].Ticker)
	assert.Equal(t, NewCoin(4, 0, "IOV"), *cs[1])
	assert.NoError(t, cs.Validate())
	assert.True(t, cs.IsPositive())
}

func TestCoinsAddSubtract(t *testing.T) {
	var cs Coins
	cs, err := cs.Add(NewCoin(5, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, cs.Contains(NewCoin(5, 0, "IOV")))
	assert.False(t, cs.Contains(NewCoin(5, 1, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "ETH")))

	cs, err = cs.Subtract(NewCoin(2, 0, "IOV"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(3, 0, "IOV"), cs.Get("IOV"))

	// Removing everything drops the currency from the set.
	cs, err = cs.Subtract(NewCoin(3, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
	assert.Equal(t, Coin{Ticker: "IOV"}, cs.Get("IOV"))

	cs, err = cs.Subtract(NewCoin(1, 0, "IOV"))
	require.NoError(t, err)
	assert.False(t, cs.IsNonNegative())
}

func TestCoinsCombineDoesNotModify(t *testing.T) {
	a, err := CombineCoins(NewCoin(1, 0, "IOV"))
	require.NoError(t, err)
	b, err := CombineCoins(NewCoin(2, 0, "IOV"), NewCoin(1, 0, "ABC"))
	require.NoError(t, err)

	total, err := a.Combine(b)
	require.NoError(t, err)
	assert.Equal(t, NewCoin(3, 0, "IOV"), total.Get("IOV"))
	assert.Equal(t, NewCoin(1, 0, "ABC"), total.Get("ABC"))
	assert.Equal(t, NewCoin(1, 0, "IOV"), a.Get("IOV"))
	assert.False(t, a.Equals(total))
	assert.True(t, total.Equals(total.Clone()))
}

func TestCoinsValidate(t *testing.T) {
	unsorted := Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "ABC")}
	assert.Error(t, unsorted.Validate())

	duplicated := Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "IOV")}
	assert.Error(t, duplicated.Validate())

	zero := Coins{NewCoinp(0, 0, "IOV")}
	assert.Error(t, zero.Validate())

	withNil := Coins{nil}
	assert.Error(t, withNil.Validate())

	var empty Coins
	assert.NoError(t, empty.Validate())
}
