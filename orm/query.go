package orm

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr goalchain.Iterator) ([]goalchain.Model, error) {
	defer itr.Close()

	res := []goalchain.Model{}
	for itr.Valid() {
		res = append(res, goalchain.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, errors.Wrap(err, "iterator")
		}
	}
	return res, nil
}

// queryPrefix returns all models stored under keys that start with
// the given prefix, in ascending key order.
func queryPrefix(db goalchain.ReadOnlyKVStore, prefix []byte) ([]goalchain.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into a (start, end) range. The end is the
// smallest key greater than every key with that prefix, or nil when
// the prefix is all 0xFF bytes.
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	start := append([]byte(nil), prefix...)
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return start, end[:i+1]
		}
	}
	return start, nil
}
