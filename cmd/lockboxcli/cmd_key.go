package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iov-one/lockbox/crypto"
	"github.com/pkg/errors"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with binary content containing private key is
created and the mnemonic that the key was derived from is written out. Keep
the mnemonic safe, it is the only way to recover the key.

When -recover is used, the mnemonic is read from the standard input instead
of being generated. This command fails if the private key file already
exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use LOCKBOXCLI_PRIV_KEY environment variable to set it.")
		recoverFl = fl.Bool("recover", false, "Read the mnemonic from the standard input.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Never overwrite an existing private key. User must delete
		// it manually first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	var mnemonic string
	if *recoverFl {
		line, err := bufio.NewReader(input).ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "cannot read mnemonic")
		}
		mnemonic = strings.Join(strings.Fields(line), " ")
	} else {
		m, err := crypto.NewMnemonic()
		if err != nil {
			return errors.Wrap(err, "cannot generate mnemonic")
		}
		mnemonic = m
	}

	key, err := crypto.PrivKeyFromMnemonic(mnemonic)
	if err != nil {
		return errors.Wrap(err, "cannot derive private key")
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "cannot create private key file")
	}
	defer fd.Close()

	if _, err := fd.Write(key.Ed25519); err != nil {
		return errors.Wrap(err, "cannot write private key")
	}
	if err := fd.Close(); err != nil {
		return errors.Wrap(err, "cannot close private key file")
	}

	if !*recoverFl {
		if _, err := fmt.Fprintln(output, mnemonic); err != nil {
			return err
		}
	}
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out a hex-address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use LOCKBOXCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, key.PublicKey().Address())
	return err
}
