package utils

import (
	"github.com/iov-one/goalchain"
)

// panicHandler panics with the given value on every call.
type panicHandler struct {
	value interface{}
}

var _ goalchain.Handler = panicHandler{}

func (p panicHandler) Check(goalchain.Context, goalchain.KVStore, goalchain.Tx) (*goalchain.CheckResult, error) {
	panic(p.value)
}

func (p panicHandler) Deliver(goalchain.Context, goalchain.KVStore, goalchain.Tx) (*goalchain.DeliverResult, error) {
	panic(p.value)
}
