package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// Genesis is the part of the tendermint genesis file that the application
// reads.
type Genesis struct {
	ChainID    string          `json:"chain_id"`
	AppOptions lockbox.Options `json:"app_state"`
}

// LoadGenesis reads a tendermint genesis file.
func LoadGenesis(path string) (Genesis, error) {
	var g Genesis
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return g, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &g); err != nil {
		return g, errors.Wrapf(errors.ErrInput, "unmarshal genesis file: %s", err)
	}
	return g, nil
}

// ChainInitializers returns an initializer that calls all given ones in
// order and stops on the first failure.
func ChainInitializers(inits ...lockbox.Initializer) lockbox.Initializer {
	return initializers(inits)
}

type initializers []lockbox.Initializer

func (in initializers) FromGenesis(opts lockbox.Options, db lockbox.KVStore) error {
	for _, i := range in {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
