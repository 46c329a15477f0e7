package lockboxtest

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/crypto"
)

// NewKey returns a freshly generated signing key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() lockbox.Condition {
	return NewKey().PublicKey().Condition()
}
