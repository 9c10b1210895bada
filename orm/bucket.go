/*
Package orm splits the key space into buckets. A bucket holds one kind
of object under the prefix "name:" and answers key and prefix queries
for it. Modules wrap a bucket in a typed struct, as the escrow and
wallet buckets do.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores objects cloned from proto under a common prefix.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ goalchain.QueryHandler = Bucket{}

// NewBucket panics unless name is 3 to 10 lower case letters or
// underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		proto:  proto,
	}
}

func (b Bucket) Name() string { return b.name }

// Register serves this bucket at "/"+path. An empty path uses the
// bucket name.
func (b Bucket) Register(path string, r goalchain.QueryRouter) {
	if path == "" {
		path = b.name
	}
	r.Register("/"+path, b)
}

// Query answers a KeyQueryMod lookup with at most one model, or a
// PrefixQueryMod scan with every model under that key prefix.
func (b Bucket) Query(db goalchain.ReadOnlyKVStore, mod string, data []byte) ([]goalchain.Model, error) {
	key := b.DBKey(data)
	switch mod {
	case goalchain.PrefixQueryMod:
		return queryPrefix(db, key)
	case goalchain.KeyQueryMod:
	default:
		return nil, errors.Wrapf(errors.ErrHuman, "unknown mod: %s", mod)
	}

	raw, err := db.Get(key)
	switch {
	case err != nil:
		return nil, err
	case raw == nil:
		return nil, nil
	}
	return []goalchain.Model{goalchain.Pair(key, raw)}, nil
}

// DBKey prefixes key with the bucket name. Every call returns a fresh
// slice.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Get loads the object stored under key. A missing key is a nil object
// and no error.
func (b Bucket) Get(db goalchain.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db goalchain.ReadOnlyKVStore, key []byte) (bool, error) {
	if len(key) == 0 {
		return false, errors.Wrap(errors.ErrInput, "empty key")
	}
	return db.Has(b.DBKey(key))
}

// Parse decodes a stored value into a fresh clone of proto keyed by key.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s value", b.name)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates obj before writing it.
func (b Bucket) Save(db goalchain.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s", b.name)
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %s", b.name)
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

func (b Bucket) Delete(db goalchain.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}
