package app

import (
	"context"
	"fmt"
	"regexp"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]lockbox.Handler
}

var _ lockbox.Registry = (*Router)(nil)
var _ lockbox.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]lockbox.Handler, 10),
	}
}

// Handle adds a new Handler for the given message path.
// panics if another Handler was already registered
func (r *Router) Handle(msg lockbox.Msg, h lockbox.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r *Router) handler(m lockbox.Msg) lockbox.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx context.Context, store lockbox.KVStore, tx lockbox.Tx) (*lockbox.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound without running handler.
type notFoundHandler string

var _ lockbox.Handler = notFoundHandler("")

func (path notFoundHandler) Check(context.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(context.Context, lockbox.KVStore, lockbox.Tx) (*lockbox.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
