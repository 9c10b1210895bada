package utils

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// Savepoint runs the rest of the stack on a cache wrap of the store and
// writes it only when the call succeeded. A failing stake then leaves
// neither a debited wallet nor a half written escrow behind.
//
// It is off for both phases until OnCheck or OnDeliver turns it on, and it
// passes through stores that cannot be cache wrapped.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ goalchain.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (*goalchain.CheckResult, error) {
	var res *goalchain.CheckResult
	err := savepoint(s.onCheck, db, func(db goalchain.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (*goalchain.DeliverResult, error) {
	var res *goalchain.DeliverResult
	err := savepoint(s.onDeliver, db, func(db goalchain.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// savepoint calls fn with a cache wrap of db when enabled, and with db
// itself otherwise.
func savepoint(enabled bool, db goalchain.KVStore, fn func(goalchain.KVStore) error) error {
	cacheable, ok := db.(goalchain.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "write savepoint")
}
