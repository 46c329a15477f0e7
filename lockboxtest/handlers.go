package lockboxtest

import (
	"context"

	"github.com/iov-one/lockbox"
)

// Handler is a mock implementation of the lockbox.Handler interface.
//
// Each method call is counted and returns the configured result.
type Handler struct {
	checkCall   int
	CheckResult lockbox.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult lockbox.DeliverResult
	DeliverErr    error
}

var _ lockbox.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the given key value pair to the store before
// returning Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ lockbox.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &lockbox.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &lockbox.DeliverResult{}, nil
}

// PanicHandler always panics with the given value.
type PanicHandler struct {
	Value interface{}
}

var _ lockbox.Handler = PanicHandler{}

func (h PanicHandler) Check(context.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(context.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.DeliverResult, error) {
	panic(h.Value)
}
