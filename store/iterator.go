package store

import (
	"bytes"

	"github.com/google/btree"
)

// collectRange returns a snapshot of all cache items within [start, end),
// in ascending or descending key order. A nil bound is unlimited.
func collectRange(bt *btree.BTree, start, end []byte, reverse bool) []cacheItem {
	var items []cacheItem
	collect := func(i btree.Item) bool {
		items = append(items, i.(cacheItem))
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(cacheItem{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(cacheItem{key: start}, collect)
	default:
		bt.AscendRange(cacheItem{key: start}, cacheItem{key: end}, collect)
	}

	if reverse {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// mergeIterator joins the cache items with the parent iterator, taking
// into consideration overwrites and deletes. Cached values win over the
// parent ones, tombstones hide them.
type mergeIterator struct {
	cache   []cacheItem
	parent  Iterator
	reverse bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(cache []cacheItem, parent Iterator, reverse bool) (*mergeIterator, error) {
	iter := &mergeIterator{
		cache:   cache,
		parent:  parent,
		reverse: reverse,
	}
	if err := iter.skipDeleted(); err != nil {
		iter.Close()
		return nil, err
	}
	return iter, nil
}

// Valid implements Iterator and returns true iff it can be read
func (i *mergeIterator) Valid() bool {
	return len(i.cache) > 0 || i.parent.Valid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *mergeIterator) Next() error {
	switch i.source() {
	case us:
		i.cache = i.cache[1:]
	case both:
		i.cache = i.cache[1:]
		if err := i.parent.Next(); err != nil {
			return err
		}
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("Advanced past the end!")
	}
	return i.skipDeleted()
}

// Key returns the key of the cursor.
func (i *mergeIterator) Key() []byte {
	switch i.source() {
	case us, both:
		return i.cache[0].key
	case parent:
		return i.parent.Key()
	default:
		panic("Advanced past the end!")
	}
}

// Value returns the value of the cursor.
func (i *mergeIterator) Value() []byte {
	switch i.source() {
	case us, both:
		return i.cache[0].value
	case parent:
		return i.parent.Value()
	default:
		panic("Advanced past the end!")
	}
}

// Close releases the Iterator.
func (i *mergeIterator) Close() {
	i.parent.Close()
	i.cache = nil
}

// skipDeleted fast forwards over all tombstones, together with the parent
// entries they hide.
func (i *mergeIterator) skipDeleted() error {
	for {
		src := i.source()
		if src != us && src != both {
			return nil
		}
		if !i.cache[0].deleted {
			return nil
		}
		i.cache = i.cache[1:]
		if src == both {
			if err := i.parent.Next(); err != nil {
				return err
			}
		}
	}
}

// source selects the iterator that holds the next key in iteration order.
func (i *mergeIterator) source() source {
	cacheValid := len(i.cache) > 0
	parentValid := i.parent.Valid()
	switch {
	case !cacheValid && !parentValid:
		return none
	case !parentValid:
		return us
	case !cacheValid:
		return parent
	}

	cmp := bytes.Compare(i.cache[0].key, i.parent.Key())
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return us
	case cmp > 0:
		return parent
	default:
		return both
	}
}
