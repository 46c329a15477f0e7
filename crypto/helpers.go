/*
Package crypto provides ed25519 keys for signing transactions. Private keys
can be derived from a BIP39 mnemonic.
*/
package crypto

import (
	"github.com/iov-one/lockbox"
)

// ExtensionName is the extension part of every signature condition.
const ExtensionName = "sigs"

// PubKey verifies signatures and maps to a condition.
type PubKey interface {
	Verify(message []byte, sig []byte) bool
	Condition() lockbox.Condition
}

// Signer signs messages. It does not expose the private key so that a
// hardware wallet can implement it.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}
