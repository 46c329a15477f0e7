package escrow

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/gconf"
)

const gconfPackage = "escrow"

// Configuration of the escrow extension.
type Configuration struct {
	// Ticker is the only currency that can be deposited.
	Ticker string `json:"ticker"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if !coin.IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker)
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, gconfPackage, &conf); err != nil {
		return nil, errors.Wrap(err, "load escrow configuration")
	}
	return &conf, nil
}

// SaveConf stores the escrow configuration.
func SaveConf(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, gconfPackage, conf)
}

// Initializer loads the escrow configuration from the genesis file.
type Initializer struct{}

var _ lockbox.Initializer = Initializer{}

// FromGenesis reads conf.escrow from the genesis file.
func (Initializer) FromGenesis(opts lockbox.Options, db lockbox.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, gconfPackage, &conf)
}
