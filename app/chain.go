package app

import (
	"reflect"

	"github.com/iov-one/goalchain"
)

// Decorators is an ordered stack of decorators that is not yet bound to a
// Handler. The first decorator is the outermost one.
type Decorators []goalchain.Decorator

/*
ChainDecorators collects the decorators that every transaction passes
through before it reaches the final Handler, usually a Router.

  app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    sigs.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(router)

Nil decorators are skipped, so optional ones can be passed unconditionally.
*/
func ChainDecorators(chain ...goalchain.Decorator) Decorators {
	return Decorators(nil).Chain(chain...)
}

// Chain returns a new stack with the given decorators appended.
func (d Decorators) Chain(chain ...goalchain.Decorator) Decorators {
	out := make(Decorators, 0, len(d)+len(chain))
	out = append(out, d...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			out = append(out, dec)
		}
	}
	return out
}

func isNilDecorator(d goalchain.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler binds the stack to h. The returned Handler runs every
// decorator in order and calls h last.
func (d Decorators) WithHandler(h goalchain.Handler) goalchain.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = step{d: d[i], next: h}
	}
	return h
}

// step runs one decorator around the rest of the chain.
type step struct {
	d    goalchain.Decorator
	next goalchain.Handler
}

var _ goalchain.Handler = step{}

func (s step) Check(ctx goalchain.Context, store goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx goalchain.Context, store goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
