package escrow

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/orm"
	amino "github.com/tendermint/go-amino"
)

// BucketName is where the deposit is stored.
const BucketName = "escrow"

// depositKey is the only key used in the escrow bucket.
var depositKey = []byte("deposit")

var cdc = amino.NewCodec()

// Deposit is the value currently held by the escrow.
type Deposit struct {
	Owner  lockbox.Address `json:"owner"`
	Amount coin.Coin       `json:"amount"`
}

var _ orm.Model = (*Deposit)(nil)

func (d *Deposit) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(d)
}

func (d *Deposit) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, d)
}

// Validate ensures the deposit has an owner and holds value.
func (d *Deposit) Validate() error {
	if err := d.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := d.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !d.Amount.IsPositive() {
		return errors.Wrap(errors.ErrModel, "deposit amount must be positive")
	}
	return nil
}

// Bucket keeps the escrow deposit.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for the escrow deposit.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Deposit{}),
	}
}

// Current returns the deposit held by the escrow, or nil if there is none.
// A stored deposit that is not valid is returned as ErrModel.
func (b Bucket) Current(db lockbox.ReadOnlyKVStore) (*Deposit, error) {
	var d Deposit
	switch err := b.One(db, depositKey, &d); {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &d, nil
}

// Save stores d as the escrow deposit.
func (b Bucket) Save(db lockbox.KVStore, d *Deposit) error {
	return b.Put(db, depositKey, d)
}

// Clear removes the deposit.
func (b Bucket) Clear(db lockbox.KVStore) error {
	return b.Delete(db, depositKey)
}
