package server

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/lockbox/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	flagForce   = "force"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific. Anything the operator must
// know about, like recovery phrases, is written to out.
type GenOptions func(out io.Writer, args []string) (json.RawMessage, error)

// GenesisFile returns the path of the genesis file tendermint keeps in home.
func GenesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

func parseInitFlags(args []string) (bool, []string, error) {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite the app_state if already present")
	err := initFlags.Parse(args)
	return force, initFlags.Args(), err
}

// InitCmd will add the app_state to the genesis file created
// by `tendermint init`. Remaining arguments are passed to gen.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	force, rest, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	genFile := GenesisFile(home)
	if !fileExists(genFile) {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run tendermint init first", genFile)
	}

	options, err := gen(os.Stdout, rest)
	if err != nil {
		return err
	}
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}

	if !force && hasAppState(doc) {
		return errors.Wrapf(errors.ErrState, "%s already set in %s, use -%s to overwrite", appStateKey, filename, flagForce)
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}

func hasAppState(doc GenesisDoc) bool {
	raw := bytes.TrimSpace(doc[appStateKey])
	switch string(raw) {
	case "", "null", "{}", `""`:
		return false
	}
	return true
}
