package app

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp completes StoreApp with transaction processing. Every transaction
// is decoded and passed to the handler, using the check or deliver cache
// depending on the ABCI call.
type BaseApp struct {
	*StoreApp
	decoder lockbox.TxDecoder
	handler lockbox.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp returns an application that processes transactions with given
// handler. In debug mode error responses carry the full stack trace.
func NewBaseApp(store *StoreApp, decoder lockbox.TxDecoder, handler lockbox.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(txBytes)
	if err != nil {
		return lockbox.DeliverOrError(nil, err, b.debug)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.handler.Deliver(b.txContext("deliver_tx", tx), b.store.DeliverStore(), tx)
	return lockbox.DeliverOrError(res, err, b.debug)
}

func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.decode(txBytes)
	if err != nil {
		return lockbox.CheckOrError(nil, err, b.debug)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.handler.Check(b.txContext("check_tx", tx), b.store.CheckStore(), tx)
	return lockbox.CheckOrError(res, err, b.debug)
}

// txContext must be called with the mutex held.
func (b BaseApp) txContext(call string, tx lockbox.Tx) context.Context {
	return lockbox.WithLogInfo(b.blockContext, "call", call, "path", lockbox.GetPath(tx))
}

// decode never panics. A malformed transaction is an ErrInput.
func (b BaseApp) decode(raw []byte) (tx lockbox.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}
