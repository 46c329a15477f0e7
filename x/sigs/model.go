package sigs

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/orm"
	amino "github.com/tendermint/go-amino"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

var cdc = amino.NewCodec()

// UserData keeps the replay protection state of a single signer.
type UserData struct {
	Pubkey   *crypto.PublicKey `json:"pubkey"`
	Sequence int64             `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(u)
}

func (u *UserData) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, u)
}

func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if err := u.Pubkey.Validate(); err != nil {
		return errors.Wrap(err, "pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
// Before incrementing the sequence, this function is testing for a value
// overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	next := u.Sequence + 1

	// The greatest nonce value supported by clients is
	//   Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores UserData keyed by the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for managing user sequences.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}),
	}
}

// GetOrCreate loads the signer state, or returns a fresh one with a zero
// sequence if this key never signed anything.
func (b Bucket) GetOrCreate(db lockbox.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	err := b.One(db, pubkey.Address(), &user)
	switch {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// Save persists the user under its public key address.
func (b Bucket) Save(db lockbox.KVStore, user *UserData) error {
	return b.Put(db, user.Pubkey.Address(), user)
}

// RegisterQuery will register this bucket as "/auth"
func RegisterQuery(qr lockbox.QueryRouter) {
	qr.Register("/auth", orm.NewQueryHandler(NewBucket()))
}
