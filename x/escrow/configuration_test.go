package escrow

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/lockboxtest"
	"github.com/iov-one/lockbox/lockboxtest/assert"
	"github.com/iov-one/lockbox/store"
	"github.com/iov-one/lockbox/x/cash"
)

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    string
	}{
		"ticker configured": {
			genesis: `{"conf": {"escrow": {"ticker": "IOV"}}}`,
			want:    "IOV",
		},
		"invalid ticker": {
			genesis: `{"conf": {"escrow": {"ticker": "iov"}}}`,
			wantErr: errors.ErrCurrency,
		},
		"missing configuration": {
			genesis: `{"conf": {}}`,
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts lockbox.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			conf, err := loadConf(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, conf.Ticker)
		})
	}
}

func TestCashVault(t *testing.T) {
	alice := lockboxtest.NewCondition().Address()
	db := store.MemStore()
	bank := cash.NewController(cash.NewBucket())
	vault := NewCashVault(bank)

	// Without configuration nothing can be received.
	assert.IsErr(t, errors.ErrNotFound, vault.Receive(db, alice, coin.NewCoin(1, 0, "IOV")))

	assert.Nil(t, SaveConf(db, &Configuration{Ticker: "IOV"}))
	assert.Nil(t, bank.IssueCoins(db, alice, coin.NewCoin(10, 0, "IOV")))

	assert.Nil(t, vault.Receive(db, alice, coin.NewCoin(4, 0, "IOV")))
	held, err := bank.Balance(db, CustodyAddress)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(4, 0, "IOV"), held.Get("IOV"))

	// Custody never pays out more than it holds.
	assert.IsErr(t, errors.ErrInsufficientAmount, vault.Release(db, alice, coin.NewCoin(5, 0, "IOV")))

	assert.Nil(t, vault.Release(db, alice, coin.NewCoin(4, 0, "IOV")))
	balance, err := bank.Balance(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(10, 0, "IOV"), balance.Get("IOV"))

	held, err = bank.Balance(db, CustodyAddress)
	assert.Nil(t, err)
	assert.Equal(t, true, held.IsEmpty())
}
