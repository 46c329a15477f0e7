package cash

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r lockbox.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ lockbox.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	res := lockbox.NewCheck(sendTxCost, "")
	return res, nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(store, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &lockbox.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx context.Context, tx lockbox.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := lockbox.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Make sure we have permission from the source.
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}
