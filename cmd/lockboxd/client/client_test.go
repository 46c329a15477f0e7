package client

import (
	"testing"
	"time"

	"github.com/iov-one/lockbox"
	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/x/cash"
	"github.com/iov-one/lockbox/x/escrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/rpc/client"
	rpctest "github.com/tendermint/tendermint/rpc/test"
)

// blocks go by fast, no need to wait seconds....
func fastWaiter(delta int64) (abort error) {
	delay := time.Duration(delta) * 5 * time.Millisecond
	time.Sleep(delay)
	return nil
}

var _ client.Waiter = fastWaiter

func newTestClient(t *testing.T) *Client {
	t.Helper()
	conn := client.NewLocal(node)
	require.NoError(t, client.WaitForHeight(conn, 2, fastWaiter))
	return NewClient(conn)
}

func TestChainID(t *testing.T) {
	c := newTestClient(t)
	chainID, err := c.ChainID()
	require.NoError(t, err)
	assert.Equal(t, rpctest.GetConfig().ChainID(), chainID)
}

func TestBalanceQuery(t *testing.T) {
	c := newTestClient(t)

	// bad address returns error
	_, err := c.Balance([]byte{1, 2, 3, 4})
	assert.Error(t, err)

	// missing account returns nothing
	missing := crypto.GenPrivKeyEd25519().PublicKey().Address()
	coins, err := c.Balance(missing)
	assert.NoError(t, err)
	assert.Nil(t, coins)

	coins, err = c.Balance(faucet.PublicKey().Address())
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "IOV", coins[0].Ticker)
	assert.True(t, coins[0].IsPositive())
}

func TestSequence(t *testing.T) {
	c := newTestClient(t)
	seq, err := c.NextSequence(crypto.GenPrivKeyEd25519().PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestEscrowRoundTrip(t *testing.T) {
	c := newTestClient(t)

	alice := crypto.GenPrivKeyEd25519()
	aliceAddr := alice.PublicKey().Address()

	submit := func(key crypto.Signer, msg lockbox.Msg) BroadcastTxResponse {
		tx := lockboxd.NewTx(msg)
		require.NoError(t, c.SignTx(tx, key))
		return c.BroadcastTx(tx)
	}

	res := submit(faucet, &cash.SendMsg{
		Source:      faucet.PublicKey().Address(),
		Destination: aliceAddr,
		Amount:      coin.NewCoinp(50, 0, "IOV"),
		Memo:        "deposit money",
	})
	require.NoError(t, res.IsError())

	d, err := c.Deposit()
	require.NoError(t, err)
	assert.Nil(t, d)

	res = submit(alice, &escrow.DepositMsg{Amount: coin.NewCoinp(20, 0, "IOV")})
	require.NoError(t, res.IsError())
	assert.Equal(t, "locked 20 IOV", res.Response.DeliverTx.Log)

	d, err = c.Deposit()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.EqualValues(t, aliceAddr, d.Owner)
	assert.Equal(t, coin.NewCoin(20, 0, "IOV"), d.Amount)

	res = submit(faucet, &escrow.DepositMsg{Amount: coin.NewCoinp(1, 0, "IOV")})
	assert.True(t, res.Is(escrow.ErrAlreadyLocked))

	res = submit(faucet, &escrow.ClaimMsg{Phrase: escrow.SecretPhrase})
	assert.True(t, res.Is(escrow.ErrNotOwner))

	res = submit(alice, &escrow.ClaimMsg{Phrase: "open sesame"})
	assert.True(t, res.Is(escrow.ErrWrongPhrase))

	res = submit(alice, &escrow.ClaimMsg{Phrase: escrow.SecretPhrase})
	require.NoError(t, res.IsError())
	assert.Equal(t, "redeemed 20 IOV", res.Response.DeliverTx.Log)

	d, err = c.Deposit()
	require.NoError(t, err)
	assert.Nil(t, d)

	coins, err := c.Balance(aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(50, 0, "IOV"), coins.Get("IOV"))
}
