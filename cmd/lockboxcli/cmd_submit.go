package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

The command waits until the transaction is committed and writes out the log
of its execution.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use LOCKBOXCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	resp := dial(*tmAddrFl).BroadcastTx(tx)
	if err := resp.IsError(); err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}

	if log := resp.Response.DeliverTx.Log; log != "" {
		fmt.Fprintln(output, log)
	}
	_, err = fmt.Fprintf(output, "committed at height %d\n", resp.Response.Height)
	return err
}
