package app

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// ChainInitializers lets you initialize many extensions with one function.
// Initializers run in the given order and the first failure aborts.
func ChainInitializers(inits ...goalchain.Initializer) goalchain.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []goalchain.Initializer
}

var _ goalchain.Initializer = chainInitializer{}

// FromGenesis passes the options to every initializer.
func (c chainInitializer) FromGenesis(opts goalchain.Options, kv goalchain.KVStore) error {
	for i, init := range c.inits {
		if err := init.FromGenesis(opts, kv); err != nil {
			return errors.Wrapf(err, "initializer %d (%T)", i, init)
		}
	}
	return nil
}
