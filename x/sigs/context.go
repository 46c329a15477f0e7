package sigs

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/x"
)

type ctxKey struct{}

// withSigners is unexported so that only the decorator can declare who
// signed a transaction.
func withSigners(ctx context.Context, signers []lockbox.Condition) context.Context {
	return context.WithValue(ctx, ctxKey{}, signers)
}

// Authenticate reads the signers stored in the context by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the conditions of all transaction signers.
func (Authenticate) GetConditions(ctx context.Context) []lockbox.Condition {
	signers, _ := ctx.Value(ctxKey{}).([]lockbox.Condition)
	return signers
}

// HasAddress returns true if one of the signers has given address.
func (a Authenticate) HasAddress(ctx context.Context, addr lockbox.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
