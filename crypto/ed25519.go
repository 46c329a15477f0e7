package crypto

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ PubKey = (*PublicKey)(nil)

// Validate returns an error if the key is not a well formed ed25519 key.
func (p *PublicKey) Validate() error {
	if p == nil {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "public key must be %d bytes", ed25519.PublicKeySize)
	}
	return nil
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition encodes the public key into a lockbox condition
func (p *PublicKey) Condition() lockbox.Condition {
	return lockbox.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is the address of the condition of this key.
func (p *PublicKey) Address() lockbox.Address {
	return p.Condition().Address()
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrState, "malformed private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	privateKey := ed25519.PrivateKey(p.Ed25519)
	pub := privateKey.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{Ed25519: priv}
}

// mnemonicEntropy gives a 24 word phrase.
const mnemonicEntropy = 256

// NewMnemonic returns a fresh BIP39 recovery phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropy)
	if err != nil {
		return "", errors.Wrap(err, "entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "mnemonic")
	}
	return mnemonic, nil
}

// PrivKeyFromMnemonic derives the private key recovered by given BIP39 phrase.
// The first 32 bytes of the BIP39 seed (empty passphrase) are the ed25519
// seed.
func PrivKeyFromMnemonic(mnemonic string) (*PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Wrap(errors.ErrInput, "invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")
	return PrivKeyEd25519FromSeed(seed[:ed25519.SeedSize]), nil
}
