package lockbox

import (
	"context"
	"encoding/json"
)

// Handler processes messages of a single route. Check is run when a
// transaction enters the mempool and must not have lasting effects. Deliver
// is run when the transaction is included in a block.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx context.Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps every handler of an application, for example to verify
// signatures or to recover from panics. It decides whether and how to call
// next.
type Decorator interface {
	Check(ctx context.Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx context.Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry assigns handlers to message routes.
type Registry interface {
	// Handle makes given handler process every message with the same
	// path as the example message.
	Handle(Msg, Handler)
}

// Options is the app_state section of the genesis file. Each extension reads
// its own key.
type Options map[string]json.RawMessage

// ReadOptions decodes the JSON value stored under given key into obj. A
// missing key is not an error and leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw := o[key]
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
