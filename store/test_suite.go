package store

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Suite holds every CacheableKVStore implementation to the same contract.
// Package tests build one with their constructor and call its methods.
type Suite struct {
	makeBase StoreConstructor
}

// StoreConstructor returns an empty store and a function releasing it.
type StoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor StoreConstructor) *Suite {
	return &Suite{makeBase: constructor}
}

// escrowKey builds keys the way escrows are stored: the owner followed by
// the big endian task id. All tasks of one owner form a single range that
// iterates in task order.
func escrowKey(owner string, task uint64) []byte {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], task)
	return key
}

func escrow(owner string, task uint64, state string) Model {
	return Pair(escrowKey(owner, task), []byte(state))
}

// missing describes a key that must not be found.
func missing(owner string, task uint64) Model {
	return Pair(escrowKey(owner, task), nil)
}

// prefixEnd returns the first key after every key starting with prefix.
func prefixEnd(prefix string) []byte {
	end := []byte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// GetSet checks that a write is visible only in the layer it was made in,
// until that layer is written down.
func (s *Suite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	first := escrow("alice", 1, "staked")
	second := escrow("alice", 2, "staked")
	other := escrow("bob", 1, "staked")

	assertModels(t, base, missing("alice", 1))
	require.NoError(t, base.Set(first.Key, first.Value))
	assertModels(t, base, first)

	cache := base.CacheWrap()
	assertModels(t, cache, first, missing("alice", 2))
	require.NoError(t, cache.Set(second.Key, second.Value))
	assertModels(t, cache, first, second)
	assertModels(t, base, missing("alice", 2))
	require.NoError(t, cache.Write())
	assertModels(t, base, first, second)

	discarded := base.CacheWrap()
	require.NoError(t, discarded.Set(other.Key, other.Value))
	require.NoError(t, discarded.Delete(first.Key))
	discarded.Discard()
	assertModels(t, base, first, second, missing("bob", 1))

	completed := base.CacheWrap()
	require.NoError(t, completed.Delete(first.Key))
	assertModels(t, completed, missing("alice", 1), second)
	assertModels(t, base, first)
	require.NoError(t, completed.Write())
	assertModels(t, base, missing("alice", 1), second)
}

// CacheConflicts checks a child layer that changes values of its parent.
func (s *Suite) CacheConflicts(t *testing.T) {
	cases := map[string]struct {
		parent []Op
		child  []Op
		// wantParent is checked before the child is written, want is
		// checked in the child and again in the parent after the write.
		wantParent []Model
		want       []Model
	}{
		"restake overwrites the record": {
			parent:     makeSetOps(escrow("alice", 1, "v1")),
			child:      makeSetOps(escrow("alice", 1, "v2")),
			wantParent: []Model{escrow("alice", 1, "v1")},
			want:       []Model{escrow("alice", 1, "v2")},
		},
		"complete then stake again": {
			parent:     makeSetOps(escrow("alice", 1, "v1")),
			child:      append(makeDelOps(escrow("alice", 1, "")), makeSetOps(escrow("alice", 1, "v2"))...),
			wantParent: []Model{escrow("alice", 1, "v1")},
			want:       []Model{escrow("alice", 1, "v2")},
		},
		"stake then complete leaves nothing": {
			child:      append(makeSetOps(escrow("alice", 1, "v1")), makeDelOps(escrow("alice", 1, ""))...),
			wantParent: []Model{missing("alice", 1)},
			want:       []Model{missing("alice", 1)},
		},
		"deleting a missing record": {
			parent:     makeSetOps(escrow("bob", 1, "v1")),
			child:      makeDelOps(escrow("alice", 1, "")),
			wantParent: []Model{missing("alice", 1), escrow("bob", 1, "v1")},
			want:       []Model{missing("alice", 1), escrow("bob", 1, "v1")},
		},
		"overwrite one, delete another, add a third": {
			parent: makeSetOps(escrow("alice", 1, "v1"), escrow("alice", 2, "v1")),
			child: append(
				makeSetOps(escrow("alice", 1, "v2"), escrow("bob", 7, "v1")),
				makeDelOps(escrow("alice", 2, ""))...),
			wantParent: []Model{escrow("alice", 1, "v1"), escrow("alice", 2, "v1"), missing("bob", 7)},
			want:       []Model{escrow("alice", 1, "v2"), missing("alice", 2), escrow("bob", 7, "v1")},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parent {
				require.NoError(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.child {
				require.NoError(t, op.Apply(child))
			}

			assertModels(t, parent, tc.wantParent...)
			assertModels(t, child, tc.want...)
			require.NoError(t, child.Write())
			assertModels(t, parent, tc.want...)
		})
	}
}

// PrefixIterator lists the escrows of one owner, the way queries by
// owner do, across a parent and a child layer.
func (s *Suite) PrefixIterator(t *testing.T) {
	stored := []Model{
		escrow("alice", 1, "a1"),
		escrow("alice", 2, "a2"),
		escrow("alice", 3, "a3"),
		escrow("alice", 256, "a256"),
		escrow("bob", 1, "b1"),
		escrow("bob", 2, "b2"),
	}
	alice := stored[:4]

	// the child completes alice 2, stakes alice 4 and bob 3
	changes := append(
		makeDelOps(escrow("alice", 2, "")),
		makeSetOps(escrow("alice", 4, "a4"), escrow("bob", 3, "b3"))...)
	aliceAfter := []Model{stored[0], stored[2], escrow("alice", 4, "a4"), stored[3]}
	bobAfter := []Model{stored[4], stored[5], escrow("bob", 3, "b3")}

	cases := map[string]iterCase{
		"all records in the parent": {
			pre: makeSetOps(stored...),
			queries: []rangeQuery{
				{nil, nil, false, stored},
				{nil, nil, true, reverse(stored)},
				{[]byte("alice"), prefixEnd("alice"), false, alice},
				{[]byte("alice"), prefixEnd("alice"), true, reverse(alice)},
				{[]byte("bob"), prefixEnd("bob"), false, stored[4:]},
				{[]byte("carol"), prefixEnd("carol"), false, nil},
			},
		},
		"all records in the child": {
			child: makeSetOps(stored...),
			queries: []rangeQuery{
				{nil, nil, false, stored},
				{[]byte("alice"), prefixEnd("alice"), true, reverse(alice)},
			},
		},
		"task ids bound the range": {
			pre: makeSetOps(stored...),
			queries: []rangeQuery{
				{escrowKey("alice", 2), escrowKey("alice", 256), false, stored[1:3]},
				{escrowKey("alice", 2), escrowKey("alice", 256), true, reverse(stored[1:3])},
				{escrowKey("alice", 3), nil, false, stored[2:]},
				{nil, escrowKey("alice", 3), true, reverse(stored[:2])},
			},
		},
		"child changes are merged": {
			pre:   makeSetOps(stored...),
			child: changes,
			queries: []rangeQuery{
				{[]byte("alice"), prefixEnd("alice"), false, aliceAfter},
				{[]byte("alice"), prefixEnd("alice"), true, reverse(aliceAfter)},
				{[]byte("bob"), prefixEnd("bob"), false, bobAfter},
				{nil, nil, false, append(append([]Model{}, aliceAfter...), bobAfter...)},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

// IteratorWithConflicts covers a child layer that overwrites or deletes
// records the iteration would otherwise return from the parent.
func (s *Suite) IteratorWithConflicts(t *testing.T) {
	a, b, c := escrow("alice", 1, "a"), escrow("alice", 2, "b"), escrow("alice", 3, "c")
	a2, b2, d := escrow("alice", 1, "a2"), escrow("alice", 2, "b2"), escrow("alice", 4, "d")

	cases := map[string]iterCase{
		"parent and child are combined": {
			pre:   makeSetOps(a, b),
			child: makeSetOps(c),
			queries: []rangeQuery{
				{nil, nil, false, []Model{a, b, c}},
				{b.Key, c.Key, false, []Model{b}},
				{nil, nil, true, []Model{c, b, a}},
			},
		},
		"child values win": {
			pre:   makeSetOps(a, b, c),
			child: makeSetOps(a2, b2, d),
			queries: []rangeQuery{
				{nil, nil, false, []Model{a2, b2, c, d}},
				{b.Key, d.Key, false, []Model{b2, c}},
				{nil, nil, true, []Model{d, c, b2, a2}},
			},
		},
		"deleted records are skipped": {
			pre:   makeSetOps(a, c, d),
			child: makeDelOps(a, b, d),
			queries: []rangeQuery{
				{nil, nil, false, []Model{c}},
				{nil, nil, true, []Model{c}},
				// the end bound falls on the only record left
				{nil, c.Key, false, nil},
			},
		},
		"everything deleted": {
			pre:   makeSetOps(a, b),
			child: makeDelOps(a, b),
			queries: []rangeQuery{
				{nil, nil, false, nil},
				{nil, nil, true, nil},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

// assertModels checks Get and Has for every model. A nil value means the
// key must be missing.
func assertModels(t testing.TB, kv ReadOnlyKVStore, models ...Model) {
	t.Helper()
	for _, m := range models {
		got, err := kv.Get(m.Key)
		require.NoError(t, err)
		assert.Equal(t, m.Value, got, "value of %X", m.Key)
		has, err := kv.Has(m.Key)
		require.NoError(t, err)
		assert.Equal(t, m.Value != nil, has, "presence of %X", m.Key)
	}
}

// iterCase writes pre into the base store, child into a cache wrap of it
// and runs all queries against the cache wrap.
type iterCase struct {
	pre     []Op
	child   []Op
	queries []rangeQuery
}

type rangeQuery struct {
	start   []byte
	end     []byte
	reverse bool
	want    []Model
}

func (i iterCase) verify(t testing.TB, base CacheableKVStore) {
	t.Helper()
	for _, op := range i.pre {
		require.NoError(t, op.Apply(base))
	}
	child := base.CacheWrap()
	for _, op := range i.child {
		require.NoError(t, op.Apply(child))
	}

	for n, q := range i.queries {
		var iter Iterator
		var err error
		if q.reverse {
			iter, err = child.ReverseIterator(q.start, q.end)
		} else {
			iter, err = child.Iterator(q.start, q.end)
		}
		require.NoError(t, err)

		var got []Model
		for ; iter.Valid(); err = iter.Next() {
			require.NoError(t, err)
			got = append(got, Pair(iter.Key(), iter.Value()))
		}
		require.NoError(t, err)
		iter.Close()

		assert.Equal(t, q.want, got, "query %d", n)
	}
}

func reverse(models []Model) []Model {
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}

func makeSetOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func makeDelOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
