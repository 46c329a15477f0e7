package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/lockboxtest/assert"
	"github.com/iov-one/lockbox/store"
	"github.com/iov-one/lockbox/x/cash"
)

func TestGenInitOptions(t *testing.T) {
	addr := crypto.GenPrivKeyEd25519().PublicKey().Address()

	cases := map[string]struct {
		args       []string
		wantErr    *errors.Error
		wantTicker string
		wantPhrase bool
	}{
		"defaults": {
			args:       nil,
			wantTicker: "IOV",
			wantPhrase: true,
		},
		"custom ticker": {
			args:       []string{"ETH"},
			wantTicker: "ETH",
			wantPhrase: true,
		},
		"given address": {
			args:       []string{"IOV", addr.String()},
			wantTicker: "IOV",
		},
		"invalid ticker": {
			args:    []string{"eth"},
			wantErr: errors.ErrCurrency,
		},
		"invalid address": {
			args:    []string{"IOV", "1234"},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			raw, err := GenInitOptions(&out, tc.args)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			var state genesisState
			assert.Nil(t, json.Unmarshal(raw, &state))
			assert.Equal(t, tc.wantTicker, state.Conf.Escrow.Ticker)
			assert.Equal(t, 1, len(state.Cash))
			assert.Equal(t, []coin.Coin{coin.NewCoin(initialSupply, 0, tc.wantTicker)}, state.Cash[0].Coins)

			phrase := strings.TrimSpace(out.String())
			if !tc.wantPhrase {
				assert.Equal(t, "", phrase)
				assert.Equal(t, addr, state.Cash[0].Address)
				return
			}
			key, err := crypto.PrivKeyFromMnemonic(phrase)
			assert.Nil(t, err)
			assert.Equal(t, key.PublicKey().Address(), state.Cash[0].Address)
		})
	}
}

func TestInitializers(t *testing.T) {
	raw, err := GenInitOptions(&bytes.Buffer{}, []string{"IOV"})
	assert.Nil(t, err)
	var opts lockbox.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	assert.Nil(t, Initializers().FromGenesis(opts, db))

	var state genesisState
	assert.Nil(t, json.Unmarshal(raw, &state))
	coins, err := cash.NewBucket().Get(db, state.Cash[0].Address)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(initialSupply, 0, "IOV"), coins.Get("IOV"))

	// The escrow configuration is required.
	delete(opts, "conf")
	assert.IsErr(t, errors.ErrNotFound, Initializers().FromGenesis(opts, store.MemStore()))
}
