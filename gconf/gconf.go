package gconf

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// ReadStore is all Load needs from a store.
type ReadStore interface {
	Get(key []byte) ([]byte, error)
}

// Store is all Save needs from a store.
type Store interface {
	ReadStore
	Set(key, value []byte) error
}

// Configuration is the stored configuration of one package.
type Configuration interface {
	Validate() error
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// key is where the configuration of pkg lives.
func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates conf and writes it as the configuration of pkg.
func Save(db Store, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "validate %s configuration", pkg)
	}
	raw, err := conf.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s configuration", pkg)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of pkg into dst. A package that was never
// configured is ErrNotFound.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(key(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "load %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration", pkg)
	}
	return errors.Wrapf(dst.Unmarshal(raw), "unmarshal %s configuration", pkg)
}

// InitConfig saves the genesis value found under "conf" and then pkg. A
// package missing from the genesis is ErrNotFound.
func InitConfig(db Store, opts goalchain.Options, pkg string, conf Configuration) error {
	var all goalchain.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis conf: %s", err)
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration in genesis", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %s configuration: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
