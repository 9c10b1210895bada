package x

import (
	"context"
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/weavetest"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestAuthenticators(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carol := weavetest.NewCondition()

	fromCtx := &weavetest.CtxAuth{Key: "signers"}
	otherKey := &weavetest.CtxAuth{Key: "other"}
	signed := fromCtx.SetConditions(context.Background(), alice, bob)

	cases := map[string]struct {
		ctx        goalchain.Context
		auth       Authenticator
		wantMain   goalchain.Condition
		wantAll    []goalchain.Condition
		wantSigned []goalchain.Condition
		wantNot    []goalchain.Condition
	}{
		"nobody signed": {
			ctx:     context.Background(),
			auth:    &weavetest.Auth{},
			wantNot: []goalchain.Condition{alice},
		},
		"one signer": {
			ctx:        context.Background(),
			auth:       &weavetest.Auth{Signer: alice},
			wantMain:   alice,
			wantAll:    []goalchain.Condition{alice},
			wantSigned: []goalchain.Condition{alice},
			wantNot:    []goalchain.Condition{bob},
		},
		"chained authenticators keep their order": {
			ctx:        context.Background(),
			auth:       ChainAuth(&weavetest.Auth{Signer: bob}, &weavetest.Auth{}, &weavetest.Auth{Signer: alice}),
			wantMain:   bob,
			wantAll:    []goalchain.Condition{bob, alice},
			wantSigned: []goalchain.Condition{alice, bob},
			wantNot:    []goalchain.Condition{carol},
		},
		"signers from the context": {
			ctx:        signed,
			auth:       fromCtx,
			wantMain:   alice,
			wantAll:    []goalchain.Condition{alice, bob},
			wantSigned: []goalchain.Condition{alice, bob},
			wantNot:    []goalchain.Condition{carol},
		},
		"context read with another key": {
			ctx:     signed,
			auth:    ChainAuth(otherKey),
			wantNot: []goalchain.Condition{alice, bob},
		},
		"empty chain": {
			ctx:     signed,
			auth:    ChainAuth(),
			wantNot: []goalchain.Condition{alice},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, MainSigner(tc.ctx, tc.auth))
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))
			for _, c := range tc.wantSigned {
				if !tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Errorf("%s must have signed", c)
				}
			}
			for _, c := range tc.wantNot {
				if tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Errorf("%s must not have signed", c)
				}
			}
		})
	}
}
