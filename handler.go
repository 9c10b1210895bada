package goalchain

import (
	"bytes"
	"encoding/json"

	"github.com/iov-one/goalchain/errors"
)

// Handler processes the messages of one route, a stake or a payment.
type Handler interface {
	Checker
	Deliverer
}

// Checker runs in CheckTx. It validates a transaction and prices it,
// without committing anything.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer runs in DeliverTx and applies the transaction to the state.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs in front of a handler, for concerns shared by all routes
// such as signatures. It decides whether next is called at all.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to routes. The route is taken from the Path of
// the given message, so a zero value message is enough.
type Registry interface {
	Handle(Msg, Handler)
}

// Options is the app_state of the genesis file, one raw JSON value per
// extension name.
type Options map[string]json.RawMessage

// ReadOptions decodes the value of key into obj. A missing key leaves obj
// untouched and is not an error.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Stream expects an array of json elements under the given key and allows
// to decode them one by one. Each call of the returned function decodes the
// next element into dst. ErrEmpty is returned once all elements were
// consumed, ErrState on any call after that or after a decoding failure.
func (o Options) Stream(key string) (func(dst interface{}) error, error) {
	raw := o[key]
	if len(raw) == 0 {
		return nil, errors.Wrapf(errors.ErrEmpty, "no %q key", key)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	var started, done bool
	return func(dst interface{}) error {
		if done {
			return errors.Wrap(errors.ErrState, "stream closed")
		}
		if !started {
			started = true
			if tok, err := dec.Token(); err != nil || tok != json.Delim('[') {
				done = true
				return errors.Wrapf(errors.ErrInput, "%q is not a list", key)
			}
		}
		if !dec.More() {
			done = true
			return errors.Wrap(errors.ErrEmpty, "end of stream")
		}
		if err := dec.Decode(dst); err != nil {
			done = true
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		return nil
	}, nil
}

// Initializer loads the genesis state of one extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
