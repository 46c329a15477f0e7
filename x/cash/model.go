package cash

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/orm"
	amino "github.com/tendermint/go-amino"
)

// BucketName is where we store the balances
const BucketName = "cash"

var cdc = amino.NewCodec()

// Set is the content of a wallet: the coins owned by a single address.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.Model = (*Set)(nil)

func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Validate requires that all coins are in alphabetical order and positive.
func (s *Set) Validate() error {
	if err := s.Coins.Validate(); err != nil {
		return err
	}
	if !s.Coins.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	return nil
}

// Bucket is a type-safe wrapper around orm.ModelBucket
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Set{}),
	}
}

// Get returns the coins held by given address. A missing wallet is an empty
// set.
func (b Bucket) Get(db lockbox.ReadOnlyKVStore, addr lockbox.Address) (coin.Coins, error) {
	var set Set
	switch err := b.One(db, addr, &set); {
	case err == nil:
		return set.Coins, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// Save stores the wallet content. A wallet without coins is removed.
func (b Bucket) Save(db lockbox.KVStore, addr lockbox.Address, coins coin.Coins) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	if coins.IsEmpty() {
		if err := b.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return b.Put(db, addr, &Set{Coins: coins})
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr lockbox.QueryRouter) {
	qr.Register("/wallets", orm.NewQueryHandler(NewBucket()))
}
