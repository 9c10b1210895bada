package x

import (
	"github.com/iov-one/goalchain"
)

// Authenticator tells a handler who authorized the transaction. Handlers
// take one in their constructor so that tests and other signature schemes
// can stand in for x/sigs.
type Authenticator interface {
	// GetConditions returns every condition the transaction satisfies.
	GetConditions(goalchain.Context) []goalchain.Condition

	// HasAddress reports whether any of those conditions has addr.
	HasAddress(goalchain.Context, goalchain.Address) bool
}

// MultiAuth accepts whatever any of its Authenticators accepts.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth combines several Authenticators. Conditions are reported in
// the order the Authenticators are given.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

func (m MultiAuth) GetConditions(ctx goalchain.Context) []goalchain.Condition {
	var conds []goalchain.Condition
	for _, a := range m {
		conds = append(conds, a.GetConditions(ctx)...)
	}
	return conds
}

func (m MultiAuth) HasAddress(ctx goalchain.Context, addr goalchain.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition, the one a message without an
// explicit owner acts for. It is nil when nobody signed.
func MainSigner(ctx goalchain.Context, auth Authenticator) goalchain.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}
