package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	msg := []byte("quixote")
	private := GenPrivKeyEd25519()
	public := private.PublicKey()
	require.NoError(t, public.Validate())

	sig, err := private.Sign(msg)
	require.NoError(t, err)

	assert.True(t, public.Verify(msg, sig))
	assert.False(t, public.Verify([]byte("quixota"), sig))
	sig[0] ^= 0x01
	assert.False(t, public.Verify(msg, sig))

	other := GenPrivKeyEd25519().PublicKey()
	assert.False(t, other.Address().Equals(public.Address()))
}

func TestDeterministicKeys(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.PublicKey(), b.PublicKey())
	assert.Equal(t, a.PublicKey().Address(), b.PublicKey().Address())
	assert.NoError(t, a.PublicKey().Condition().Validate())
}

func TestMnemonic(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)

	first, err := PrivKeyFromMnemonic(mnemonic)
	require.NoError(t, err)
	second, err := PrivKeyFromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, first.Ed25519, second.Ed25519)

	_, err = PrivKeyFromMnemonic("definitely not a valid recovery phrase")
	assert.Error(t, err)

	other, err := NewMnemonic()
	require.NoError(t, err)
	third, err := PrivKeyFromMnemonic(other)
	require.NoError(t, err)
	assert.NotEqual(t, first.Ed25519, third.Ed25519)
}

func TestPublicKeyValidate(t *testing.T) {
	var nilKey *PublicKey
	assert.Error(t, nilKey.Validate())
	assert.Error(t, (&PublicKey{Ed25519: []byte("short")}).Validate())
}
