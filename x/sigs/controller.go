package sigs

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
)

// SignCodeV1 prefixes every signed message.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the sha512 digest of the message a signer must sign
// to authorize a transaction:
//
//   SignCodeV1 | len(chainID) as uint8 | chainID | sequence as big endian int64 | tx bytes
//
// The digest has a constant length so that hardware wallets can sign it.
func BuildSignBytes(txBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !lockbox.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	var buf bytes.Buffer
	buf.Grow(len(SignCodeV1) + 1 + len(chainID) + 8 + len(txBytes))
	buf.Write(SignCodeV1)
	buf.WriteByte(uint8(len(chainID)))
	buf.WriteString(chainID)
	_ = binary.Write(&buf, binary.BigEndian, seq)
	buf.Write(txBytes)

	digest := sha512.Sum512(buf.Bytes())
	return digest[:], nil
}

// SignTx signs the transaction on behalf of signer, using given sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	msg, err := BuildSignBytes(raw, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}

// VerifyTxSignatures validates every signature of the transaction and returns
// the conditions of all signers, in signature order. A transaction without
// signatures returns an empty list.
func VerifyTxSignatures(db lockbox.KVStore, tx SignedTx, chainID string) ([]lockbox.Condition, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]lockbox.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := VerifySignature(db, sig, raw, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature checks a single signature over txBytes. On success the
// sequence of the signer is incremented in the store.
func VerifySignature(db lockbox.KVStore, sig *StdSignature, txBytes []byte, chainID string) (lockbox.Condition, error) {
	if sig == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	bucket := NewBucket()
	user, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	msg, err := BuildSignBytes(txBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(msg, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

// NextSequence returns the sequence that the next signature of given key must
// use.
func NextSequence(db lockbox.ReadOnlyKVStore, pubkey *crypto.PublicKey) (int64, error) {
	user, err := NewBucket().GetOrCreate(db, pubkey)
	if err != nil {
		return 0, err
	}
	return user.Sequence, nil
}
