package server

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickerInitializer requires a "ticker" option.
type tickerInitializer struct{}

func (tickerInitializer) FromGenesis(opts lockbox.Options, db lockbox.KVStore) error {
	var ticker string
	if err := opts.ReadOptions("ticker", &ticker); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "ticker")
	}
	return db.Set([]byte("ticker"), []byte(ticker))
}

func TestValidateGenesis(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
	}{
		"valid": {
			Genesis: `{"chain_id": "test-chain-1", "app_state": {"ticker": "IOV"}}`,
		},
		"initializer failure": {
			Genesis: `{"chain_id": "test-chain-1", "app_state": {}}`,
			WantErr: errors.ErrEmpty,
		},
		"invalid chain id": {
			Genesis: `{"chain_id": "x", "app_state": {"ticker": "IOV"}}`,
			WantErr: errors.ErrInput,
		},
		"malformed file": {
			Genesis: `{"chain_id": `,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			home, cleanup := setupHome(t)
			defer cleanup()
			path := filepath.Join(home, "genesis.json")
			require.NoError(t, ioutil.WriteFile(path, []byte(tc.Genesis), 0600))

			err := ValidateGenesis(tickerInitializer{}, []string{path})
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestValidateGenesisNeedsFiles(t *testing.T) {
	err := ValidateGenesis(tickerInitializer{}, nil)
	assert.True(t, errors.ErrInput.Is(err))
}
