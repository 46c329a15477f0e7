package utils

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// Savepoint runs the rest of the stack on a cache of the store. The cache is
// written only if no error is returned, so that a failed transaction leaves
// no partial changes behind. It must be enabled for check, deliver or both.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ lockbox.Decorator = Savepoint{}

// NewSavepoint returns a disabled savepoint. Use OnCheck and OnDeliver to
// enable it.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (*lockbox.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	var res *lockbox.CheckResult
	err := withSavepoint(store, func(db lockbox.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (*lockbox.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	var res *lockbox.DeliverResult
	err := withSavepoint(store, func(db lockbox.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// withSavepoint calls fn with a cache of the store and writes the cache only
// if fn succeeds. Stores that cannot be cached are passed through.
func withSavepoint(store lockbox.KVStore, fn func(lockbox.KVStore) error) error {
	cstore, ok := store.(lockbox.CacheableKVStore)
	if !ok {
		return fn(store)
	}
	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	return nil
}
