package escrow

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x/cash"
)

// Vault moves value in and out of the escrow.
type Vault interface {
	// Receive takes amount from the depositor.
	Receive(db lockbox.KVStore, from lockbox.Address, amount coin.Coin) error
	// Release pays amount to the recipient. It either moves the whole
	// amount or fails without changes.
	Release(db lockbox.KVStore, to lockbox.Address, amount coin.Coin) error
}

// CustodyAddress is the wallet holding deposited coins.
var CustodyAddress = lockbox.NewCondition("escrow", "custody", []byte("deposit")).Address()

// CashVault keeps deposits in the custody wallet of the cash extension.
// Only coins of the configured currency are accepted.
type CashVault struct {
	bank cash.Controller
}

var _ Vault = CashVault{}

// NewCashVault returns a vault using given cash controller.
func NewCashVault(bank cash.Controller) CashVault {
	return CashVault{bank: bank}
}

func (v CashVault) Receive(db lockbox.KVStore, from lockbox.Address, amount coin.Coin) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if amount.Ticker != conf.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "escrow accepts only %s", conf.Ticker)
	}
	return v.bank.MoveCoins(db, from, CustodyAddress, amount)
}

func (v CashVault) Release(db lockbox.KVStore, to lockbox.Address, amount coin.Coin) error {
	return v.bank.MoveCoins(db, CustodyAddress, to, amount)
}
