package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree is the degree of every cache btree. Cache wraps live for a
// single transaction or block and stay small, so a low degree is enough.
const btreeDegree = 2

// BTreeCacheable gives any KVStore btree cache wraps.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns an empty store that keeps everything in memory. Tests
// use it in place of the iavl store.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheWrap keeps uncommitted writes in a btree on top of a read only
// parent. Every write goes to the btree, so reads through this layer see
// it, and to the batch that Write flushes into the parent.
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap wraps parent. Writes reach the parent only through
// batch. A nil free list allocates a new one, nested wraps share the list
// of their parent.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:     btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all writes into the parent and empties this layer.
func (b BTreeCacheWrap) Write() error {
	defer b.Discard()
	return b.batch.Write()
}

// Discard empties the btree, returning its nodes to the free list. The
// batch is not reset, so no other call may follow.
func (b BTreeCacheWrap) Discard() {
	for b.bt.Len() > 0 {
		b.bt.DeleteMin()
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(cacheItem{key: key, value: value})
	return b.batch.Set(key, value)
}

// Delete leaves a tombstone that hides the value of the parent.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(cacheItem{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if item, ok := b.cached(key); ok {
		return item.value, nil
	}
	return b.parent.Get(key)
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if item, ok := b.cached(key); ok {
		return !item.deleted, nil
	}
	return b.parent.Has(key)
}

// cached returns the item written in this layer for the key, if any. The
// value of a tombstone is always nil.
func (b BTreeCacheWrap) cached(key []byte) (cacheItem, bool) {
	res := b.bt.Get(cacheItem{key: key})
	if res == nil {
		return cacheItem{}, false
	}
	return res.(cacheItem), true
}

func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(collectRange(b.bt, start, end, false), parent, false)
}

func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(collectRange(b.bt, start, end, true), parent, true)
}

// cacheItem is one btree entry, ordered by key.
type cacheItem struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = cacheItem{}

func (c cacheItem) Less(than btree.Item) bool {
	return bytes.Compare(c.key, than.(cacheItem).key) < 0
}
