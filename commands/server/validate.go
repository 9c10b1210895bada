package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store"
)

// ValidateGenesis runs ini against the app_state of each genesis file,
// on a throw away store.
func ValidateGenesis(ini goalchain.Initializer, paths []string) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrInput, "no genesis file given")
	}
	for _, path := range paths {
		state, err := readAppState(path)
		if err == nil {
			err = ini.FromGenesis(state, store.MemStore())
		}
		if err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

// readAppState loads the app_state of a genesis file. It must be a non
// empty object.
func readAppState(path string) (goalchain.Options, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var genesis struct {
		AppState goalchain.Options `json:"app_state"`
	}
	switch err := json.Unmarshal(raw, &genesis); {
	case err != nil:
		return nil, errors.Wrapf(errors.ErrInput, "genesis json: %s", err)
	case len(genesis.AppState) == 0:
		return nil, errors.Wrap(errors.ErrEmpty, "app_state")
	}
	return genesis.AppState, nil
}
