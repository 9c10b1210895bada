/*
Package app links together all the various components
to construct the goald application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/app"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store/iavl"
	"github.com/iov-one/goalchain/x"
	"github.com/iov-one/goalchain/x/cash"
	"github.com/iov-one/goalchain/x/sigs"
	"github.com/iov-one/goalchain/x/stake"
	"github.com/iov-one/goalchain/x/utils"
)

// Name is reported by the ABCI Info call.
const Name = "goalchain"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching the cash and stake messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, bank)
	stake.RegisterRoutes(r, authFn, bank)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth" and "/escrows"
func QueryRouter() goalchain.QueryRouter {
	r := goalchain.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		stake.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() goalchain.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h goalchain.Handler,
	tx goalchain.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store, err := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	if err != nil {
		return app.BaseApp{}, err
	}
	store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// Initializers loads the genesis state of every extension of the chain.
// The same set is used to start a node and to validate a genesis file.
func Initializers() goalchain.Initializer {
	return app.ChainInitializers(
		&cash.Initializer{},
		&stake.Initializer{},
	)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (goalchain.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name %q", dbPath)
	}

	// tendermint db adds the ".db" suffix itself
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
