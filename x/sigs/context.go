package sigs

import (
	"context"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/x"
)

type contextKey int

const signersKey contextKey = 0

// withSigners is unexported so that only a verified signature can put a
// signer in the context.
func withSigners(ctx goalchain.Context, signers []goalchain.Condition) goalchain.Context {
	return context.WithValue(ctx, signersKey, signers)
}

// Authenticate reads the signers that the Decorator verified.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signers of the transaction, nil outside of a
// Decorator.
func (Authenticate) GetConditions(ctx goalchain.Context) []goalchain.Condition {
	signers, _ := ctx.Value(signersKey).([]goalchain.Condition)
	return signers
}

// HasAddress reports whether addr belongs to one of the signers.
func (a Authenticate) HasAddress(ctx goalchain.Context, addr goalchain.Address) bool {
	return goalchain.HasAddress(a.GetConditions(ctx), addr)
}
