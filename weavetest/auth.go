package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/goalchain"
)

// Auth authenticates a fixed set of conditions: Signer first, if set,
// followed by Signers.
type Auth struct {
	Signer  goalchain.Condition
	Signers []goalchain.Condition
}

func (a *Auth) GetConditions(goalchain.Context) []goalchain.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]goalchain.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx goalchain.Context, addr goalchain.Address) bool {
	return goalchain.HasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context under Key
// with SetConditions.
type CtxAuth struct {
	Key string
}

func (a *CtxAuth) SetConditions(ctx goalchain.Context, conds ...goalchain.Condition) goalchain.Context {
	return context.WithValue(ctx, a.Key, conds)
}

// GetConditions panics if Key holds something else than conditions.
func (a *CtxAuth) GetConditions(ctx goalchain.Context) []goalchain.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []goalchain.Condition:
		return v
	default:
		panic(fmt.Sprintf("context key %q holds %T", a.Key, v))
	}
}

func (a *CtxAuth) HasAddress(ctx goalchain.Context, addr goalchain.Address) bool {
	return goalchain.HasAddress(a.GetConditions(ctx), addr)
}
