package app

import (
	"context"
	"reflect"

	"github.com/iov-one/lockbox"
)

// Decorators is an ordered list of decorators waiting for the handler they
// will wrap. The first decorator is the outermost one.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//   ).WithHandler(router)
//
type Decorators struct {
	chain []lockbox.Decorator
}

// ChainDecorators returns a list of given decorators. Nil values are
// skipped, so optional decorators can be passed in directly.
func ChainDecorators(chain ...lockbox.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new list with given decorators appended. The receiver is
// not modified.
func (d Decorators) Chain(chain ...lockbox.Decorator) Decorators {
	res := make([]lockbox.Decorator, 0, len(d.chain)+len(chain))
	res = append(res, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			res = append(res, dec)
		}
	}
	return Decorators{chain: res}
}

func isNilDecorator(d lockbox.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler returns a handler that runs all decorators, in order, before
// reaching h.
func (d Decorators) WithHandler(h lockbox.Handler) lockbox.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decorated{dec: d.chain[i], next: h}
	}
	return h
}

// decorated binds a decorator to the handler it wraps.
type decorated struct {
	dec  lockbox.Decorator
	next lockbox.Handler
}

var _ lockbox.Handler = decorated{}

func (d decorated) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	return d.dec.Check(ctx, store, tx, d.next)
}

func (d decorated) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	return d.dec.Deliver(ctx, store, tx, d.next)
}
