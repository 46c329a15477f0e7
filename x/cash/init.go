package cash

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
)

const optKey = "cash"

// GenesisAccount is a wallet declared in the genesis file, for example
//   {"address": "hex:C0FFEE...", "coins": [{"whole": 10, "ticker": "IOV"}]}
type GenesisAccount struct {
	Address lockbox.Address `json:"address"`
	Coins   []coin.Coin     `json:"coins"`
}

// Initializer creates the genesis wallets listed under the "cash" key.
type Initializer struct{}

var _ lockbox.Initializer = Initializer{}

func (Initializer) FromGenesis(opts lockbox.Options, kv lockbox.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrapf(errors.ErrInput, "cash genesis: %s", err)
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account")
		}
		coins, err := coin.CombineCoins(acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "genesis account %s", acct.Address)
		}
		if !coins.IsNonNegative() {
			return errors.Wrapf(errors.ErrAmount, "genesis account %s", acct.Address)
		}
		if err := bucket.Save(kv, acct.Address, coins); err != nil {
			return err
		}
	}
	return nil
}
