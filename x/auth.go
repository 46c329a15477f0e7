package x

import (
	"context"

	"github.com/iov-one/lockbox"
)

// Authenticator tells which conditions signed the transaction being
// processed. Handlers receive it in their constructor, so that the
// authentication scheme can be replaced without touching them.
type Authenticator interface {
	// GetConditions returns all conditions fulfilled by the
	// transaction, in signing order.
	GetConditions(context.Context) []lockbox.Condition
	// HasAddress returns true if any fulfilled condition has given
	// address.
	HasAddress(context.Context, lockbox.Address) bool
}

// ChainAuth returns an authenticator accepting whatever any of given
// authenticators accepts. Conditions are reported in the order of the
// authenticators.
func ChainAuth(impls ...Authenticator) Authenticator {
	return multiAuth(impls)
}

type multiAuth []Authenticator

func (m multiAuth) GetConditions(ctx context.Context) []lockbox.Condition {
	var res []lockbox.Condition
	for _, impl := range m {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

func (m multiAuth) HasAddress(ctx context.Context, addr lockbox.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first fulfilled condition, or nil if the
// transaction is not signed. The main signer is the identity acting on the
// escrow and the source of funds.
func MainSigner(ctx context.Context, auth Authenticator) lockbox.Condition {
	if signers := auth.GetConditions(ctx); len(signers) > 0 {
		return signers[0]
	}
	return nil
}
