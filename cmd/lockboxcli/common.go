package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/lockbox"
	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/cmd/lockboxd/client"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

// dial returns a client talking to the node at given address.
var dial = func(tmAddr string) *client.Client {
	return client.NewClient(client.NewHTTPConnection(tmAddr))
}

// writeTx serializes the transaction. First bytes written contain the
// information how much space the transaction takes, so that transactions can
// be streamed between commands.
func writeTx(w io.Writer, tx *lockboxd.Tx) (int, error) {
	b, err := tx.Marshal()
	if err != nil {
		return 0, err
	}

	var size [txHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))

	if n, err := w.Write(size[:]); err != nil {
		return n, err
	}
	if n, err := w.Write(b); err != nil {
		return n + txHeaderSize, err
	}
	return txHeaderSize + len(b), nil
}

func readTx(r io.Reader) (*lockboxd.Tx, int, error) {
	var size [txHeaderSize]byte
	if n, err := io.ReadFull(r, size[:]); err != nil {
		return nil, n, errors.Wrap(err, "size header")
	}
	msgSize := binary.BigEndian.Uint32(size[:])
	if msgSize > maxTxSize {
		return nil, txHeaderSize, errors.Errorf("transaction too big: %d bytes", msgSize)
	}
	raw := make([]byte, msgSize)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, n + txHeaderSize, err
	}

	var tx lockboxd.Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, int(msgSize + txHeaderSize), err
	}
	return &tx, int(msgSize + txHeaderSize), nil
}

const (
	txHeaderSize = 4
	maxTxSize    = 1 << 20
)

func decodePrivateKey(filepath string) (*crypto.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q file", filepath)
	}
	if len(data) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("invalid private key length: %d", len(data))
	}
	return &crypto.PrivateKey{Ed25519: data}, nil
}

// flAddress returns an address flag with given default value. If the default
// cannot be decoded, process is terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *lockbox.Address {
	var a lockbox.Address
	if err := a.Set(defaultVal); err != nil {
		flagDie("Cannot parse %q address flag value. %s", name, err)
	}
	fl.Var(&a, name, usage)
	return &a
}

// flCoin returns a coin flag with given default value. If the default cannot
// be decoded, process is terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		if err := c.Set(defaultVal); err != nil {
			flagDie("Cannot parse %q coin flag value. %s", name, err)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flagDie terminates the program when a command line flag has an invalid
// value.
func flagDie(description string, args ...interface{}) {
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	fmt.Fprintln(os.Stderr, description)
	os.Exit(2)
}
