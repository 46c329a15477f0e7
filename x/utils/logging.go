package utils

import (
	"context"
	"time"

	"github.com/iov-one/lockbox"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one log entry per processed transaction, using the logger
// attached to the context. Failures are logged as errors. Successful checks
// are logged at debug and successful deliveries at info level.
type Logging struct{}

var _ lockbox.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (*lockbox.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("check failed", "err", err)
	default:
		logger.Debug("check passed", "log", res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (*lockbox.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("deliver failed", "err", err)
	default:
		logger.Info("delivered", "log", res.Log)
	}
	return res, err
}

func txLogger(ctx context.Context, tx lockbox.Tx, start time.Time) log.Logger {
	return lockbox.GetLogger(ctx).With(
		"path", lockbox.GetPath(tx),
		"duration_us", time.Since(start)/time.Microsecond,
	)
}
