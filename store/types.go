//nolint
package store

import "github.com/iov-one/goalchain"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = goalchain.ReadOnlyKVStore
	SetDeleter       = goalchain.SetDeleter
	KVStore          = goalchain.KVStore
	Batch            = goalchain.Batch
	Iterator         = goalchain.Iterator
	CacheableKVStore = goalchain.CacheableKVStore
	KVCacheWrap      = goalchain.KVCacheWrap
	CommitKVStore    = goalchain.CommitKVStore
	CommitID         = goalchain.CommitID
	Model            = goalchain.Model
)

var Pair = goalchain.Pair
