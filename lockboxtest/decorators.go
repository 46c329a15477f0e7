package lockboxtest

import (
	"context"

	"github.com/iov-one/lockbox"
)

// Decorator counts its calls. It returns CheckErr or DeliverErr when set,
// otherwise the call is passed to the next handler.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks   int
	delivers int
}

var _ lockbox.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (*lockbox.CheckResult, error) {
	d.checks++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (*lockbox.DeliverResult, error) {
	d.delivers++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int   { return d.checks }
func (d *Decorator) DeliverCallCount() int { return d.delivers }

// CallCount returns the number of Check and Deliver calls together.
func (d *Decorator) CallCount() int { return d.checks + d.delivers }
