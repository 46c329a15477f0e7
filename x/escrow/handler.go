package escrow

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x"
)

// Gas allocated on check. Claims are free.
const (
	depositCost int64 = 300
	claimCost   int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r lockbox.Registry, auth x.Authenticator, vault Vault, sink EventSink) {
	m := NewMachine(vault, sink)
	r.Handle(&DepositMsg{}, DepositHandler{auth: auth, machine: m})
	r.Handle(&ClaimMsg{}, ClaimHandler{auth: auth, machine: m})
}

// RegisterQuery will register the deposit as "/escrow"
func RegisterQuery(qr lockbox.QueryRouter) {
	qr.Register("/escrow", NewQueryHandler(NewBucket()))
}

// DepositHandler locks value in the escrow.
type DepositHandler struct {
	auth    x.Authenticator
	machine *Machine
}

var _ lockbox.Handler = DepositHandler{}

// Check runs the deposit without reporting events.
func (h DepositHandler) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.machine.WithSink(DiscardSink{}).Deposit(ctx, db, caller, msg.Value()); err != nil {
		return nil, err
	}
	res := lockbox.NewCheck(depositCost, "")
	return res, nil
}

// Deliver locks the value and returns the emitted events as tags.
func (h DepositHandler) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	tags := &TagCollector{}
	m := h.machine.WithSink(NewMultiSink(h.machine.sink, tags))
	if err := m.Deposit(ctx, db, caller, msg.Value()); err != nil {
		return nil, err
	}
	return &lockbox.DeliverResult{Log: tags.Log(), Tags: tags.Tags()}, nil
}

func (h DepositHandler) validate(ctx context.Context, tx lockbox.Tx) (lockbox.Address, *DepositMsg, error) {
	var msg DepositMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := callerOf(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return caller, &msg, nil
}

// ClaimHandler releases the deposit to its owner.
type ClaimHandler struct {
	auth    x.Authenticator
	machine *Machine
}

var _ lockbox.Handler = ClaimHandler{}

// Check runs the claim without reporting events.
func (h ClaimHandler) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.machine.WithSink(DiscardSink{}).Claim(ctx, db, caller, msg.Phrase); err != nil {
		return nil, err
	}
	res := lockbox.NewCheck(claimCost, "")
	return res, nil
}

// Deliver pays the deposit out to its owner and unlocks the escrow.
func (h ClaimHandler) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	caller, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	tags := &TagCollector{}
	m := h.machine.WithSink(NewMultiSink(h.machine.sink, tags))
	if _, err := m.Claim(ctx, db, caller, msg.Phrase); err != nil {
		return nil, err
	}
	return &lockbox.DeliverResult{Log: tags.Log(), Tags: tags.Tags()}, nil
}

func (h ClaimHandler) validate(ctx context.Context, tx lockbox.Tx) (lockbox.Address, *ClaimMsg, error) {
	var msg ClaimMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := callerOf(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return caller, &msg, nil
}

// callerOf returns the address of the main signer of the transaction.
func callerOf(ctx context.Context, auth x.Authenticator) (lockbox.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return signer.Address(), nil
}
