package store

// SliceIterator walks over models that are already in memory, in the order
// they are given.
type SliceIterator struct {
	rest []Model
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{rest: data}
}

func (s *SliceIterator) Valid() bool {
	return len(s.rest) > 0
}

// Next panics when the iterator is exhausted.
func (s *SliceIterator) Next() error {
	s.current()
	s.rest = s.rest[1:]
	return nil
}

func (s *SliceIterator) Key() []byte {
	return s.current().Key
}

func (s *SliceIterator) Value() []byte {
	return s.current().Value
}

func (s *SliceIterator) Close() {
	s.rest = nil
}

func (s *SliceIterator) current() Model {
	if len(s.rest) == 0 {
		panic("iterator exhausted")
	}
	return s.rest[0]
}

// EmptyKVStore holds no data and ignores all writes. MemStore caches on top
// of it.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)    { return false, nil }
func (EmptyKVStore) Set(_, _ []byte) error       { return nil }
func (EmptyKVStore) Delete([]byte) error         { return nil }
func (e EmptyKVStore) NewBatch() Batch           { return NewNonAtomicBatch(e) }

func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// Op is a recorded write: a set, or a delete when del is true.
type Op struct {
	key   []byte
	value []byte
	del   bool
}

func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

func DelOp(key []byte) Op {
	return Op{key: key, del: true}
}

// Apply replays the write on out.
func (o Op) Apply(out SetDeleter) error {
	if o.del {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch records writes and replays them in order on Write. A
// failure stops the replay halfway, so it must only be used on top of
// stores that are themselves discarded or committed as a whole, like cache
// wraps and the iavl working tree.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write replays all recorded writes and clears them.
func (b *NonAtomicBatch) Write() error {
	for i, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			b.ops = b.ops[i:]
			return err
		}
	}
	b.ops = nil
	return nil
}
