package main

import (
	"flag"
	"fmt"
	"io"

	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/x/escrow"
)

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that locks given amount in the escrow. The signer of the
transaction becomes the owner of the deposit. Only one deposit can be held at
a time.
`)
		fl.PrintDefaults()
	}
	var (
		amountFl = flCoin(fl, "amount", "", "The value to lock, for example \"40 IOV\".")
	)
	fl.Parse(args)

	msg := &escrow.DepositMsg{}
	if !amountFl.IsZero() {
		msg.Amount = amountFl
	}
	_, err := writeTx(output, lockboxd.NewTx(msg))
	return err
}

func cmdClaim(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that releases the deposit back to its owner. The
transaction must be signed by the owner and carry the secret phrase.
`)
		fl.PrintDefaults()
	}
	var (
		phraseFl = fl.String("phrase", "", "The phrase that unlocks the escrow.")
	)
	fl.Parse(args)

	_, err := writeTx(output, lockboxd.NewTx(&escrow.ClaimMsg{Phrase: *phraseFl}))
	return err
}

func cmdState(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the current state of the escrow.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use LOCKBOXCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	d, err := dial(*tmAddrFl).Deposit()
	if err != nil {
		return fmt.Errorf("cannot query escrow: %s", err)
	}
	if d == nil {
		_, err = fmt.Fprintln(output, "state:  empty")
		return err
	}
	_, err = fmt.Fprintf(output, "state:  locked\nowner:  %s\namount: %s\n", d.Owner, d.Amount)
	return err
}

