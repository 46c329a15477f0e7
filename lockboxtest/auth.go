package lockboxtest

import (
	"context"

	"github.com/iov-one/lockbox"
)

// Auth authenticates a fixed set of conditions: Signer, if set, and all of
// Signers.
type Auth struct {
	Signer  lockbox.Condition
	Signers []lockbox.Condition
}

func (a *Auth) GetConditions(context.Context) []lockbox.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	all := make([]lockbox.Condition, 0, len(a.Signers)+1)
	return append(append(all, a.Signers...), a.Signer)
}

func (a *Auth) HasAddress(ctx context.Context, addr lockbox.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context under Key.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context in which given conditions are
// authenticated.
func (a *CtxAuth) SetConditions(ctx context.Context, conds ...lockbox.Condition) context.Context {
	return context.WithValue(ctx, a.Key, conds)
}

// GetConditions panics if the context value is not a condition list.
func (a *CtxAuth) GetConditions(ctx context.Context) []lockbox.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	return val.([]lockbox.Condition)
}

func (a *CtxAuth) HasAddress(ctx context.Context, addr lockbox.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []lockbox.Condition, addr lockbox.Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
