package cash

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
)

// Controller is the functionality exposed to other extensions that need to
// read or move value.
type Controller interface {
	Balance(lockbox.ReadOnlyKVStore, lockbox.Address) (coin.Coins, error)
	MoveCoins(lockbox.KVStore, lockbox.Address, lockbox.Address, coin.Coin) error
	IssueCoins(lockbox.KVStore, lockbox.Address, coin.Coin) error
}

// BaseController is a simple implementation of controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by given address.
func (c BaseController) Balance(db lockbox.ReadOnlyKVStore, addr lockbox.Address) (coin.Coins, error) {
	return c.bucket.Get(db, addr)
}

// MoveCoins moves the given amount from src to dest. Both new balances are
// computed before anything is written, so a failed move leaves both wallets
// unchanged.
func (c BaseController) MoveCoins(db lockbox.KVStore, src, dest lockbox.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "recipient address")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "sender")
	}
	if sender.IsEmpty() {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Contains(amount) {
		return errors.Wrap(errors.ErrInsufficientAmount, "funds")
	}
	sender, err = sender.Subtract(amount)
	if err != nil {
		return err
	}

	recipient := sender
	if !src.Equals(dest) {
		if recipient, err = c.bucket.Get(db, dest); err != nil {
			return errors.Wrap(err, "recipient")
		}
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}

	if !src.Equals(dest) {
		if err := c.bucket.Save(db, src, sender); err != nil {
			return errors.Wrap(err, "save sender")
		}
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db lockbox.KVStore, dest lockbox.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	recipient, err := c.bucket.Get(db, dest)
	if err != nil {
		return err
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
