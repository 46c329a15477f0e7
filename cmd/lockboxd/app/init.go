package app

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x/cash"
	"github.com/iov-one/lockbox/x/escrow"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// initialSupply is what the dev account receives in genesis.
const initialSupply = 123456789

// genesisState is the app_state section of the genesis file.
type genesisState struct {
	Cash []cash.GenesisAccount `json:"cash"`
	Conf struct {
		Escrow escrow.Configuration `json:"escrow"`
	} `json:"conf"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The first argument is the ticker (default IOV), which is also the only
// currency the escrow accepts. The second is the address of the account.
// If no address is given a new key is generated and its recovery phrase
// written to out.
func GenInitOptions(out io.Writer, args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr lockbox.Address
	if len(args) > 1 {
		var err error
		if addr, err = lockbox.ParseAddress(args[1]); err != nil {
			return nil, err
		}
		if err := addr.Validate(); err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		a, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Fprintln(out, phrase)
	}

	var state genesisState
	state.Cash = []cash.GenesisAccount{{
		Address: addr,
		Coins:   []coin.Coin{coin.NewCoin(initialSupply, 0, ticker)},
	}}
	state.Conf.Escrow = escrow.Configuration{Ticker: ticker}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (lockbox.Address, string, error) {
	phrase, err := crypto.NewMnemonic()
	if err != nil {
		return nil, "", err
	}
	key, err := crypto.PrivKeyFromMnemonic(phrase)
	if err != nil {
		return nil, "", err
	}
	return key.PublicKey().Address(), phrase, nil
}

// GenerateApp is used to create a stub for the start command.
// Escrow events are counted in the default prometheus registry.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "lockbox.db")
	}

	sink, err := EventSinks(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	application, err := Application("lockboxd", Stack(sink), TxDecoder, dbPath, logger, debug)
	if err != nil {
		return nil, err
	}
	return application, nil
}
