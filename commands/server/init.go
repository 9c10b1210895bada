/*
Package server contains the commands of a node binary: writing the app_state
into the tendermint genesis file, validating it and serving the application
over ABCI.
*/
package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/goalchain/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns the location of the tendermint genesis file within
// the home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd adds the app_state produced by gen to the genesis file that
// `tendermint init` created in the home directory. An existing app_state is
// only replaced when the -f flag is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	force := initFlags.Bool(flagForce, false, "overwrite an existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}

	genFile := GenesisPath(home)
	if err := addGenesisOptions(genFile, options, *force); err != nil {
		return err
	}
	logger.Info("App state written to genesis", "path", genFile)
	return nil
}

// genesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type genesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file, run tendermint init first: %s", err)
	}

	var doc genesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}

	if state, ok := doc[appStateKey]; ok && !force && !isEmptyState(state) {
		return errors.Wrap(errors.ErrState, "app_state already set, use -f to overwrite")
	}
	doc[appStateKey] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}

func isEmptyState(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", `""`:
		return true
	}
	return false
}
