package goalchain

// ReadOnlyKVStore reads the application state. Keys are compared bytewise,
// which is why escrow keys put the owner first and the task id in big
// endian: all escrows of one owner form one range, in task order.
type ReadOnlyKVStore interface {
	// Get returns nil if the key is not set.
	Get(key []byte) ([]byte, error)

	Has(key []byte) (bool, error)

	// Iterator walks over [start, end) in ascending order. A nil start or
	// end leaves that side open. The range must not be written while the
	// iterator is open.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator walks over [start, end) in descending order, under
	// the same rules as Iterator.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter writes the state. Both KVStore and Batch are one. Passed
// slices must not be modified afterwards.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore reads and writes the state.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes and applies them all on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator is a cursor over a key range.
//
//	it, err := db.Iterator(start, end)
//	if err != nil {
//		return err
//	}
//	defer it.Close()
//	for ; it.Valid(); err = it.Next() {
//		if err != nil {
//			return err
//		}
//		use(it.Key(), it.Value())
//	}
//
// Next, Key and Value panic once Valid returned false.
type Iterator interface {
	Valid() bool
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stage writes in a cache wrap. A transaction runs in
// a cache wrap that is written only if the transaction succeeds.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap stages writes on top of another store. Reads see the staged
// writes. Write applies them to the wrapped store, Discard drops them.
// Either call ends the life of the cache wrap. Cache wraps nest.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent root of the state. Everything is written
// through CacheWrap and becomes durable, as a new version, on Commit.
type CommitKVStore interface {
	// Get reads the last committed version, ignoring written but
	// uncommitted data.
	Get(key []byte) ([]byte, error)

	CacheWrap() KVCacheWrap

	Commit() (CommitID, error)

	// LoadLatestVersion restores the newest complete version from disk.
	LoadLatestVersion() error

	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by its number and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
