package utils

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// Recovery turns a panic further down the stack into an ErrPanic, failing
// only the transaction that caused it.
type Recovery struct{}

var _ goalchain.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (res *goalchain.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (res *goalchain.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
