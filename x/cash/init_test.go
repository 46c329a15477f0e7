package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	addr := lockbox.NewCondition("sigs", "ed25519", []byte("genesis")).Address()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    coin.Coins
	}{
		"no accounts": {
			genesis: `{}`,
		},
		"human readable coins": {
			genesis: `{"cash": [{"address": "` + addr.String() + `", "coins": ["10 IOV", "0.5 ETH", "2 IOV"]}]}`,
			want: coin.Coins{
				coin.NewCoinp(0, 500000000, "ETH"),
				coin.NewCoinp(12, 0, "IOV"),
			},
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "1234", "coins": ["10 IOV"]}]}`,
			wantErr: errors.ErrInput,
		},
		"negative balance": {
			genesis: `{"cash": [{"address": "` + addr.String() + `", "coins": ["-10 IOV"]}]}`,
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts lockbox.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)

			got, err := NewBucket().Get(db, addr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQueryWallets(t *testing.T) {
	addr := lockbox.NewCondition("sigs", "ed25519", []byte("query")).Address()
	db := store.MemStore()
	require.NoError(t, NewController(NewBucket()).IssueCoins(db, addr, coin.NewCoin(3, 0, "IOV")))

	qr := lockbox.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/wallets").Query(db, addr)
	require.NoError(t, err)
	require.Len(t, res, 1)

	var set Set
	require.NoError(t, set.Unmarshal(res[0].Value))
	assert.Equal(t, coin.NewCoin(3, 0, "IOV"), set.Coins.Get("IOV"))
}
