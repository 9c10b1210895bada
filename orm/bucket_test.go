package orm

import (
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestBucketName(t *testing.T) {
	obj := NewSimpleObj(nil, &Counter{})

	assert.Panics(t, func() {
		// An invalid bucket name must crash.
		NewBucket("l33t", obj)
	})
}

func TestBucketCannotSaveInvalid(t *testing.T) {
	b := NewBucket("counter", NewSimpleObj(nil, &Counter{}))
	db := store.MemStore()

	cases := map[string]Object{
		"missing key":   NewSimpleObj(nil, &Counter{Count: 1}),
		"missing value": NewSimpleObj([]byte("a"), nil),
		"invalid value": NewSimpleObj([]byte("a"), &Counter{Count: -4}),
	}
	for testName, obj := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := b.Save(db, obj); err == nil {
				t.Fatal("invalid object saved")
			}
		})
	}
}

func TestBucketStore(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("bucket", NewSimpleObj(nil, &Counter{}))

	key := []byte("jane")
	obj, err := b.Get(db, key)
	assert.Nil(t, err)
	if obj != nil {
		t.Fatalf("unexpected object: %v", obj)
	}
	has, err := b.Has(db, key)
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, b.Save(db, NewSimpleObj(key, &Counter{Count: 17})))

	obj, err = b.Get(db, key)
	assert.Nil(t, err)
	assert.Equal(t, key, obj.Key())
	assert.Equal(t, &Counter{Count: 17}, obj.Value())

	has, err = b.Has(db, key)
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	// data lives under the prefixed key
	raw, err := db.Get([]byte("bucket:jane"))
	assert.Nil(t, err)
	parsed, err := b.Parse(key, raw)
	assert.Nil(t, err)
	assert.Equal(t, obj, parsed)

	assert.Nil(t, b.Delete(db, key))
	obj, err = b.Get(db, key)
	assert.Nil(t, err)
	if obj != nil {
		t.Fatalf("deleted object returned: %v", obj)
	}

	if _, err := b.Has(db, nil); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

func TestBucketDBKey(t *testing.T) {
	b := NewBucket("abcd", NewSimpleObj(nil, &Counter{}))
	// The prefix slice has spare capacity. Keys must not share memory.
	k1 := b.DBKey([]byte("ABC"))
	k2 := b.DBKey([]byte("LED"))
	assert.Equal(t, []byte("abcd:ABC"), k1)
	assert.Equal(t, []byte("abcd:LED"), k2)
}

func TestBucketParseError(t *testing.T) {
	b := NewBucket("counter", NewSimpleObj(nil, &Counter{}))
	if _, err := b.Parse([]byte("a"), []byte{0xFF, 0xFF, 0xFF}); err == nil {
		t.Fatal("garbage parsed")
	}
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("spammer", NewSimpleObj(nil, &Counter{}))

	save := func(key string, count int64) goalchain.Model {
		obj := NewSimpleObj([]byte(key), &Counter{Count: count})
		assert.Nil(t, b.Save(db, obj))
		raw, err := obj.Value().Marshal()
		assert.Nil(t, err)
		return goalchain.Pair(b.DBKey([]byte(key)), raw)
	}
	a1 := save("a1", 1)
	a2 := save("a2", 2)
	save("b1", 3)

	// other buckets sharing a name prefix are never returned
	other := NewBucket("spammers", NewSimpleObj(nil, &Counter{}))
	assert.Nil(t, other.Save(db, NewSimpleObj([]byte("a3"), &Counter{Count: 5})))

	qr := goalchain.NewQueryRouter()
	b.Register("", qr)
	h := qr.Handler("/spammer")
	if h == nil {
		t.Fatal("bucket not registered")
	}

	cases := map[string]struct {
		mod     string
		data    []byte
		wantRes []goalchain.Model
		wantErr *errors.Error
	}{
		"exact key": {
			mod:     goalchain.KeyQueryMod,
			data:    []byte("a2"),
			wantRes: []goalchain.Model{a2},
		},
		"missing key": {
			mod:  goalchain.KeyQueryMod,
			data: []byte("zz"),
		},
		"prefix": {
			mod:     goalchain.PrefixQueryMod,
			data:    []byte("a"),
			wantRes: []goalchain.Model{a1, a2},
		},
		"prefix without match": {
			mod:     goalchain.PrefixQueryMod,
			data:    []byte("c"),
			wantRes: []goalchain.Model{},
		},
		"unknown mod": {
			mod:     "random",
			data:    []byte("a"),
			wantErr: errors.ErrHuman,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := h.Query(db, tc.mod, tc.data)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix             []byte
		wantStart, wantEnd []byte
	}{
		"empty":   {},
		"simple":  {prefix: []byte{1, 2}, wantStart: []byte{1, 2}, wantEnd: []byte{1, 3}},
		"carry":   {prefix: []byte{1, 0xFF}, wantStart: []byte{1, 0xFF}, wantEnd: []byte{2}},
		"all max": {prefix: []byte{0xFF, 0xFF}, wantStart: []byte{0xFF, 0xFF}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
