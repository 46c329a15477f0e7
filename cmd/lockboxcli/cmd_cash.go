package main

import (
	"flag"
	"fmt"
	"io"

	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/x/cash"
)

func cmdSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transferring funds from the source account to the
destination account.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = flAddress(fl, "src", "", "A source account address that the funds are sent from.")
		dstFl    = flAddress(fl, "dst", "", "A destination account address that the funds are sent to.")
		amountFl = flCoin(fl, "amount", "1 IOV", "An amount that is to be transferred.")
		memoFl   = fl.String("memo", "", "A short message attached to the transfer.")
	)
	fl.Parse(args)

	if err := srcFl.Validate(); err != nil {
		flagDie("invalid source address: %s", err)
	}
	if err := dstFl.Validate(); err != nil {
		flagDie("invalid destination address: %s", err)
	}

	tx := lockboxd.NewTx(&cash.SendMsg{
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      amountFl,
		Memo:        *memoFl,
	})
	_, err := writeTx(output, tx)
	return err
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the funds held by an account. When no address is given, the account
of the private key is used.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use LOCKBOXCLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use LOCKBOXCLI_PRIV_KEY environment variable to set it.")
		addrFl = flAddress(fl, "addr", "", "Address of the account.")
	)
	fl.Parse(args)

	addr := *addrFl
	if len(addr) == 0 {
		key, err := decodePrivateKey(*keyPathFl)
		if err != nil {
			return err
		}
		addr = key.PublicKey().Address()
	}

	coins, err := dial(*tmAddrFl).Balance(addr)
	if err != nil {
		return fmt.Errorf("cannot query balance: %s", err)
	}
	if coins.IsEmpty() {
		_, err = fmt.Fprintln(output, "no funds")
		return err
	}
	for _, c := range coins {
		if _, err := fmt.Fprintln(output, c); err != nil {
			return err
		}
	}
	return nil
}
