package cash

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use goalchain.Address, so address in hex, not base64
type GenesisAccount struct {
	Address goalchain.Address `json:"address"`
	Coins   []*coin.Coin      `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ goalchain.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts goalchain.Options, kv goalchain.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		wallet, err := WalletWith(acct.Address, acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := wallet.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
