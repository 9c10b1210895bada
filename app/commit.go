package app

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// CommitStore keeps the two cache wraps a block works on, one for CheckTx
// and one for DeliverTx, on top of the committed state.
type CommitStore struct {
	committed goalchain.CommitKVStore
	deliver   goalchain.KVCacheWrap
	check     goalchain.KVCacheWrap
}

// NewCommitStore restores the latest version of store.
func NewCommitStore(store goalchain.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (goalchain.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists the writes of DeliverTx as a new version. Whatever
// CheckTx wrote is dropped, the next block checks against the new state.
//
// Tendermint serializes ABCI calls, so nothing here is locked.
func (cs *CommitStore) Commit() (goalchain.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return goalchain.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() goalchain.CacheableKVStore {
	return cs.check
}

func (cs *CommitStore) DeliverStore() goalchain.CacheableKVStore {
	return cs.deliver
}

// chainIDKey lives under "_gc:", the prefix of data owned by the app
// itself rather than an extension.
var chainIDKey = []byte("_gc:chainID")

// loadChainID returns "" before InitChain.
func loadChainID(kv goalchain.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID stores the chain id once. It cannot change after genesis.
func saveChainID(kv goalchain.KVStore, chainID string) error {
	if !goalchain.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch exists, err := kv.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "chain id is set at genesis")
	}
	return errors.Wrap(kv.Set(chainIDKey, []byte(chainID)), "save chain id")
}
