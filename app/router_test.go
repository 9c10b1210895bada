package app

import (
	"context"
	"testing"

	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store"
	"github.com/iov-one/goalchain/weavetest"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var (
		msg     = &weavetest.Msg{RoutePath: "test/good"}
		handler = &weavetest.Handler{}
	)
	r.Handle(msg, handler)

	tx := &weavetest.Tx{Msg: msg}
	if _, err := r.Check(context.TODO(), store.MemStore(), tx); err != nil {
		t.Fatalf("check failed: %s", err)
	}
	if _, err := r.Deliver(context.TODO(), store.MemStore(), tx); err != nil {
		t.Fatalf("delivery failed: %s", err)
	}
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/secret"}}
	_, err := r.Check(context.TODO(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(context.TODO(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterBadMessage(t *testing.T) {
	r := NewRouter()

	_, err := r.Deliver(context.TODO(), store.MemStore(), &weavetest.Tx{})
	assert.IsErr(t, errors.ErrState, err)

	_, err = r.Check(context.TODO(), store.MemStore(), &weavetest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestRouterHandlerError(t *testing.T) {
	r := NewRouter()
	msg := &weavetest.Msg{RoutePath: "test/bad"}
	r.Handle(msg, &weavetest.Handler{CheckErr: errors.ErrHuman, DeliverErr: errors.ErrAmount})

	tx := &weavetest.Tx{Msg: msg}
	_, err := r.Check(context.TODO(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrHuman, err)
	_, err = r.Deliver(context.TODO(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle(&weavetest.Msg{RoutePath: "test/once"}, &weavetest.Handler{})

	assert.Panics(t, func() {
		r.Handle(&weavetest.Msg{RoutePath: "test/once"}, &weavetest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle(&weavetest.Msg{RoutePath: "test:7"}, &weavetest.Handler{})
	})
}
