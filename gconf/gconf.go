/*
Package gconf keeps the configuration of extensions in the database.

Every package saves one configuration object under its name. The object is
read from the genesis file once, during chain initialisation, and loaded by
handlers whenever they need it.
*/
package gconf

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// ReadStore is the part of lockbox.ReadOnlyKVStore that Load needs.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of lockbox.KVStore that Save needs.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler is implemented by configurations that can be saved.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by configurations that can be loaded.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration can be both saved and loaded.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates src and writes it as the configuration of pkg.
func Save(db Store, pkg string, src ValidMarshaler) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validate %s configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %s configuration: %s", pkg, err)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of pkg into dst. ErrNotFound is returned if
// nothing was saved.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	raw, err := db.Get(key(pkg))
	switch {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig reads the genesis section conf.<pkg> into conf and saves it.
func InitConfig(db Store, opts lockbox.Options, pkg string, conf Configuration) error {
	var all lockbox.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrapf(errors.ErrInput, "read conf: %s", err)
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read %s configuration: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
