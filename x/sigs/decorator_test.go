package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/lockboxtest"
	"github.com/iov-one/lockbox/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txWithSigs struct {
	lockboxtest.Tx
	signedTx
}

// signerHandler records the signers seen in the context.
type signerHandler struct {
	signers []lockbox.Condition
}

func (h *signerHandler) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &lockbox.CheckResult{}, nil
}

func (h *signerHandler) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &lockbox.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	const chainID = "deco-chain"
	ctx := lockbox.WithChainID(context.Background(), chainID)
	key := crypto.GenPrivKeyEd25519()

	newTx := func(seq int64) *txWithSigs {
		tx := &txWithSigs{signedTx: signedTx{data: []byte("payload")}}
		sig, err := SignTx(key, &tx.signedTx, chainID, seq)
		require.NoError(t, err)
		tx.sigs = []*StdSignature{sig}
		return tx
	}

	db := store.MemStore()
	h := &signerHandler{}
	d := NewDecorator()

	res, err := d.Check(ctx, db, newTx(0), h)
	require.NoError(t, err)
	assert.EqualValues(t, signatureVerifyCost, res.GasPayment)
	assert.Equal(t, []lockbox.Condition{key.PublicKey().Condition()}, h.signers)
	assert.False(t, Authenticate{}.HasAddress(ctx, key.PublicKey().Address()))

	_, err = d.Deliver(ctx, db, newTx(1), h)
	require.NoError(t, err)
	assert.Equal(t, []lockbox.Condition{key.PublicKey().Condition()}, h.signers)

	// replayed sequence
	_, err = d.Deliver(ctx, db, newTx(1), h)
	assert.True(t, ErrInvalidSequence.Is(err))

	// no signatures at all
	unsigned := &txWithSigs{signedTx: signedTx{data: []byte("payload")}}
	_, err = d.Deliver(ctx, db, unsigned, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = d.Deliver(ctx, db, &lockboxtest.Tx{}, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = d.AllowMissingSigs().Deliver(ctx, db, unsigned, h)
	require.NoError(t, err)
	assert.Empty(t, h.signers)
}

func TestAuthenticateHasAddress(t *testing.T) {
	a := lockboxtest.NewCondition()
	b := lockboxtest.NewCondition()
	ctx := withSigners(context.Background(), []lockbox.Condition{a})

	auth := Authenticate{}
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.False(t, auth.HasAddress(ctx, b.Address()))
	assert.Empty(t, auth.GetConditions(context.Background()))
}

func TestQueryAuth(t *testing.T) {
	db := store.MemStore()
	key := crypto.GenPrivKeyEd25519()
	user := &UserData{Pubkey: key.PublicKey(), Sequence: 3}
	require.NoError(t, NewBucket().Save(db, user))

	qr := lockbox.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/auth").Query(db, key.PublicKey().Address())
	require.NoError(t, err)
	require.Len(t, res, 1)

	var got UserData
	require.NoError(t, got.Unmarshal(res[0].Value))
	assert.EqualValues(t, 3, got.Sequence)
	assert.Equal(t, key.PublicKey(), got.Pubkey)
}
