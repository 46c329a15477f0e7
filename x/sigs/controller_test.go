package sigs

import (
	"testing"

	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signedTx struct {
	data []byte
	sigs []*StdSignature
}

func (t *signedTx) GetSignBytes() ([]byte, error)  { return t.data, nil }
func (t *signedTx) GetSignatures() []*StdSignature { return t.sigs }

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("foo"), "test-chain", 0)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := BuildSignBytes([]byte("foo"), "test-chain", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := BuildSignBytes([]byte("foo"), "other-chain", 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = BuildSignBytes([]byte("foo"), "test-chain", -1)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = BuildSignBytes([]byte("foo"), "x", 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	const chainID = "test-chain"
	key := crypto.GenPrivKeyEd25519()
	other := crypto.GenPrivKeyEd25519()
	db := store.MemStore()

	tx := &signedTx{data: []byte("deposit me")}

	sig0, err := SignTx(key, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(key, tx, chainID, 1)
	require.NoError(t, err)
	forged, err := SignTx(other, tx, chainID, 0)
	require.NoError(t, err)
	forged.Pubkey = key.PublicKey()

	seq, err := NextSequence(db, key.PublicKey())
	require.NoError(t, err)
	assert.EqualValues(t, 0, seq)

	// the signature must match the key
	_, err = VerifySignature(db, forged, tx.data, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// sequence out of order
	_, err = VerifySignature(db, sig1, tx.data, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	cond, err := VerifySignature(db, sig0, tx.data, chainID)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().Condition(), cond)

	// replay is rejected
	_, err = VerifySignature(db, sig0, tx.data, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	seq, err = NextSequence(db, key.PublicKey())
	require.NoError(t, err)
	assert.EqualValues(t, 1, seq)

	_, err = VerifySignature(db, sig1, tx.data, chainID)
	require.NoError(t, err)

	// signed for another chain
	wrongChain, err := SignTx(key, tx, "other-chain", 2)
	require.NoError(t, err)
	_, err = VerifySignature(db, wrongChain, tx.data, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "test-chain"
	a := crypto.GenPrivKeyEd25519()
	b := crypto.GenPrivKeyEd25519()
	db := store.MemStore()

	tx := &signedTx{data: []byte("two signers")}
	sigA, err := SignTx(a, tx, chainID, 0)
	require.NoError(t, err)
	sigB, err := SignTx(b, tx, chainID, 0)
	require.NoError(t, err)
	tx.sigs = []*StdSignature{sigA, sigB}

	signers, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	require.Len(t, signers, 2)
	assert.Equal(t, a.PublicKey().Condition(), signers[0])
	assert.Equal(t, b.PublicKey().Condition(), signers[1])

	empty := &signedTx{data: []byte("nobody")}
	signers, err = VerifyTxSignatures(db, empty, chainID)
	require.NoError(t, err)
	assert.Empty(t, signers)
}

func TestStdSignatureValidate(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()

	cases := map[string]struct {
		sig     StdSignature
		wantErr *errors.Error
	}{
		"valid": {
			sig: StdSignature{Pubkey: key.PublicKey(), Signature: []byte("sig")},
		},
		"negative sequence": {
			sig:     StdSignature{Pubkey: key.PublicKey(), Signature: []byte("sig"), Sequence: -1},
			wantErr: ErrInvalidSequence,
		},
		"missing pubkey": {
			sig:     StdSignature{Signature: []byte("sig")},
			wantErr: errors.ErrUnauthorized,
		},
		"malformed pubkey": {
			sig:     StdSignature{Pubkey: &crypto.PublicKey{Ed25519: []byte("short")}, Signature: []byte("sig")},
			wantErr: errors.ErrUnauthorized,
		},
		"missing signature": {
			sig:     StdSignature{Pubkey: key.PublicKey()},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.sig.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err), "got %v", err)
		})
	}
}

func TestCheckAndIncrementSequence(t *testing.T) {
	u := &UserData{Pubkey: crypto.GenPrivKeyEd25519().PublicKey()}
	require.NoError(t, u.CheckAndIncrementSequence(0))
	assert.EqualValues(t, 1, u.Sequence)
	assert.True(t, ErrInvalidSequence.Is(u.CheckAndIncrementSequence(0)))

	u.Sequence = (1 << 53) - 1
	assert.True(t, errors.ErrOverflow.Is(u.CheckAndIncrementSequence(u.Sequence)))
}
