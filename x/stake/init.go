package stake

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ goalchain.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.stake.
func (Initializer) FromGenesis(opts goalchain.Options, kv goalchain.KVStore) error {
	return gconf.InitConfig(kv, opts, packageName, &Configuration{})
}
