/*
Package sigs verifies ed25519 signatures of a transaction and keeps a
sequence per signer so that a signed transaction cannot be replayed.
*/
package sigs

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// signatureVerifyCost is the gas charged for each verified signature.
const signatureVerifyCost = 500

// Decorator verifies the transaction signatures and passes the signers down
// the stack in the context.
type Decorator struct {
	allowMissingSigs bool
}

var _ lockbox.Decorator = Decorator{}

// NewDecorator returns a decorator that rejects transactions with no
// signature.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy of the decorator that accepts transactions
// with no signature.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (*lockbox.CheckResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(withSigners(ctx, signers), db, tx)
	if err != nil {
		return nil, err
	}
	res.GasPayment += int64(len(signers)) * signatureVerifyCost
	return res, nil
}

func (d Decorator) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (*lockbox.DeliverResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(withSigners(ctx, signers), db, tx)
}

func (d Decorator) signers(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) ([]lockbox.Condition, error) {
	var signers []lockbox.Condition
	if stx, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(db, stx, lockbox.GetChainID(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "cannot verify signatures")
		}
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return signers, nil
}
