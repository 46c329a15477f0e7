// Package app assembles the lockboxd application: cash wallets, the escrow
// and signature verification on top of an iavl store.
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/app"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/store/iavl"
	"github.com/iov-one/lockbox/x"
	"github.com/iov-one/lockbox/x/cash"
	"github.com/iov-one/lockbox/x/escrow"
	"github.com/iov-one/lockbox/x/sigs"
	"github.com/iov-one/lockbox/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator identifies the signers of a transaction by their ed25519
// signatures.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns the decorators every transaction passes before reaching
// its handler.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// A failed check leaves no trace, not even a sequence increment.
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// A failed delivery still consumes the signer sequence.
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router dispatches messages to the cash and escrow handlers. Both share
// one wallet controller.
func Router(authFn x.Authenticator, sink escrow.EventSink) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, bank)
	escrow.RegisterRoutes(r, authFn, escrow.NewCashVault(bank), sink)
	return r
}

// QueryRouter serves "/wallets", "/auth" and "/escrow".
func QueryRouter() lockbox.QueryRouter {
	r := lockbox.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		escrow.RegisterQuery,
	)
	return r
}

// Initializers returns all extensions reading the genesis file.
func Initializers() lockbox.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		escrow.Initializer{},
	)
}

// Stack returns the complete transaction handler.
func Stack(sink escrow.EventSink) lockbox.Handler {
	return Chain().WithHandler(Router(Authenticator(), sink))
}

// EventSinks returns the sink escrow events are reported to. Events are
// always logged. When reg is not nil they are counted as well.
func EventSinks(reg prometheus.Registerer) (escrow.EventSink, error) {
	if reg == nil {
		return escrow.LogSink{}, nil
	}
	metrics, err := escrow.NewMetricsSink(reg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrState, "escrow metrics: "+err.Error())
	}
	return escrow.NewMultiSink(escrow.LogSink{}, metrics), nil
}

// Application returns the ABCI application. An empty dbPath keeps the
// state in memory.
func Application(name string, h lockbox.Handler,
	tx lockbox.TxDecoder, dbPath string, logger log.Logger, debug bool) (app.BaseApp, error) {

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	ctx := lockbox.WithLogger(context.Background(), logger)
	store, err := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	if err != nil {
		return app.BaseApp{}, err
	}
	store = store.WithInit(Initializers()).WithLogger(logger)
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore opens the leveldb database at dbPath. A ".db" extension is
// optional. An empty path returns a memory store.
func CommitKVStore(dbPath string) (lockbox.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	path = strings.TrimSuffix(path, filepath.Ext(path))
	kv, err := iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return kv, nil
}
