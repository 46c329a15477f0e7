package utils

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// Recovery converts a panic raised by any later decorator or handler into
// an ErrPanic error, so that a single faulty transaction cannot crash the
// node.
type Recovery struct{}

var _ lockbox.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (res *lockbox.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (res *lockbox.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
