package app

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp owns the state and answers every ABCI call that does not
// carry a transaction. BaseApp embeds it and adds CheckTx and DeliverTx.
//
// Info, InitChain, BeginBlock, EndBlock and Commit cannot report an
// error to tendermint, so they panic when the store fails.
type StoreApp struct {
	name        string
	logger      log.Logger
	store       *CommitStore
	initializer goalchain.Initializer
	queryRouter goalchain.QueryRouter

	// chainID is empty until InitChain, or loaded on restart.
	chainID string

	// base lives as long as the app, block is rebuilt by BeginBlock.
	base  goalchain.Context
	block goalchain.Context
}

// NewStoreApp loads the chain id and the last committed height from
// store. The app logs nothing until WithLogger is called.
func NewStoreApp(name string, store goalchain.CommitKVStore, queryRouter goalchain.QueryRouter, ctx goalchain.Context) (*StoreApp, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		base:        ctx,
	}
	s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		return nil, err
	}
	if chainID != "" {
		s.setChainID(chainID)
	}

	info, err := cs.CommitInfo()
	if err != nil {
		return nil, err
	}
	s.block = goalchain.WithHeight(s.base, info.Version)
	return s, nil
}

func (s *StoreApp) GetChainID() string { return s.chainID }

// WithInit sets the initializer InitChain passes the app_state to.
func (s *StoreApp) WithInit(init goalchain.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the app and of every context it builds.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.base = goalchain.WithLogger(s.base, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger { return s.logger }

// BlockContext is the context of the block being processed.
func (s *StoreApp) BlockContext() goalchain.Context { return s.block }

func (s *StoreApp) DeliverStore() goalchain.CacheableKVStore { return s.store.DeliverStore() }

func (s *StoreApp) CheckStore() goalchain.CacheableKVStore { return s.store.CheckStore() }

func (s *StoreApp) setChainID(chainID string) {
	s.chainID = chainID
	s.base = goalchain.WithChainID(s.base, chainID)
}

// genesis stores the chain id and runs the initializer. It only works on
// a chain that was never initialized.
func (s *StoreApp) genesis(chainID string, appState []byte) error {
	switch {
	case s.chainID != "":
		return errors.Wrapf(errors.ErrState, "chain %s is already initialized", s.chainID)
	case len(appState) == 0:
		return errors.Wrap(errors.ErrState, "genesis has no app_state")
	}

	var opts goalchain.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.setChainID(chainID)

	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// Info reports the last committed height and app hash.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          goalchain.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// Query reads the last committed state. The path is "/<bucket>",
// optionally followed by "?prefix". The requested height is ignored.
// Key and Value of the response are ResultSets of the same length.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	res, err := s.query(req.Path, req.Data)
	if err != nil {
		code, msg := errors.ABCIInfo(err, false)
		return abci.ResponseQuery{Code: code, Log: msg}
	}
	return res
}

func (s *StoreApp) query(path string, data []byte) (abci.ResponseQuery, error) {
	var res abci.ResponseQuery
	h, mod, err := s.queryRouter.Route(path)
	if err != nil {
		return res, err
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		return res, err
	}

	db := s.store.committed.CacheWrap()
	defer db.Discard()
	models, err := h.Query(db, mod, data)
	if err != nil {
		return res, err
	}
	res.Height = info.Version
	return res, encodeModels(&res, models)
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// InitChain runs once per chain. A second call panics.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.genesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock rebuilds the block context from the header. Handlers read
// the time from it and never from the local clock.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := goalchain.WithHeader(s.base, req.Header)
	ctx = goalchain.WithHeight(ctx, req.Header.GetHeight())
	s.block = goalchain.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
