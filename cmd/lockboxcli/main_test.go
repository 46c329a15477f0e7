package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/iov-one/lockbox"
	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/cmd/lockboxd/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// useLocalNode replaces the node connection of all commands with an in
// process application. Given address receives the whole initial supply.
func useLocalNode(t testing.TB, owner lockbox.Address) {
	t.Helper()

	sink, err := lockboxd.EventSinks(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("cannot create event sink: %s", err)
	}
	app, err := lockboxd.Application("lockboxd", lockboxd.Stack(sink),
		lockboxd.TxDecoder, "", log.NewNopLogger(), false)
	if err != nil {
		t.Fatalf("cannot create application: %s", err)
	}
	state, err := lockboxd.GenInitOptions(ioutil.Discard, []string{"IOV", owner.String()})
	if err != nil {
		t.Fatalf("cannot create genesis state: %s", err)
	}
	c := client.NewClient(client.NewLocalConn(app, "lockboxcli-test", state))

	dial = func(string) *client.Client { return c }
}

// tempKey creates a fresh private key file and returns its path.
func tempKey(t testing.TB) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "lockboxcli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	path := filepath.Join(dir, "key")
	var out bytes.Buffer
	if err := cmdKeygen(nil, &out, []string{"-key", path}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return path
}
