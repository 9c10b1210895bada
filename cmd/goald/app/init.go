package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/crypto"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/x/cash"
	"github.com/iov-one/goalchain/x/stake"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// DefaultTicker is the currency of a generated genesis.
	DefaultTicker = "GOAL"

	// DefaultStorageRate is the per byte escrow storage deposit of a
	// generated genesis.
	DefaultStorageRate = 1

	// DefaultSupply is what the single generated account receives.
	DefaultSupply = 123456789
)

// genesis is the app_state understood by the initializers of goald.
type genesis struct {
	Cash []cash.GenesisAccount `json:"cash"`
	Conf struct {
		Stake stake.Configuration `json:"stake"`
	} `json:"conf"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// Arguments are optional: [ticker] [hex address]. Without an address a new
// key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := DefaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
		}
	}

	var addr goalchain.Address
	if len(args) > 1 {
		var err error
		if addr, err = goalchain.ParseAddress(args[1]); err != nil {
			return nil, err
		}
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrap(err, "address")
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the key
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	var g genesis
	g.Cash = []cash.GenesisAccount{{
		Address: addr,
		Coins:   []*coin.Coin{coin.NewCoinp(DefaultSupply, ticker)},
	}}
	g.Conf.Stake = stake.Configuration{Ticker: ticker, StorageRate: DefaultStorageRate}
	return json.MarshalIndent(g, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, Name+".db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (goalchain.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return addr, string(keys), nil
}
