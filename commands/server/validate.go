package server

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/app"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/store"
)

// ValidateGenesis runs the initializer on the app_state of each given
// genesis file. Nothing is persisted.
func ValidateGenesis(ini lockbox.Initializer, genesisPaths []string) error {
	if len(genesisPaths) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: cmd validate <genesis.json>...")
	}
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini lockbox.Initializer, genesisPath string) error {
	genesis, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}
	if !lockbox.IsValidChainID(genesis.ChainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", genesis.ChainID)
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()
	if err := ini.FromGenesis(genesis.AppOptions, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
