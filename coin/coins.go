package coin

import (
	"sort"

	"github.com/iov-one/goalchain/errors"
)

// Coins is a wallet balance. A normalized set holds one positive coin per
// ticker, sorted by ticker. All methods returning Coins keep it normalized
// and leave the receiver untouched.
type Coins []*Coin

// CombineCoins sums the given coins into a normalized set, in any order
// and with any number of duplicates.
func CombineCoins(cs ...Coin) (Coins, error) {
	res := Coins{}
	for _, c := range cs {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Clone returns a deep copy. A nil set stays nil.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// search returns the position of ticker in the set, or where it would be
// inserted, and whether it is present.
func (cs Coins) search(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].ID() >= ticker })
	return i, i < len(cs) && cs[i].ID() == ticker
}

// Add returns the set increased by c.
func (cs Coins) Add(c Coin) (Coins, error) {
	res := cs.Clone()
	if c.IsZero() {
		return res, nil
	}
	i, ok := res.search(c.ID())
	if !ok {
		res = append(res, nil)
		copy(res[i+1:], res[i:])
		res[i] = c.Clone()
		return res, nil
	}
	sum, err := res[i].Add(c)
	if err != nil {
		return nil, err
	}
	res[i] = &sum
	return res, nil
}

// Subtract returns the set decreased by c. A ticker that falls to zero is
// removed. Taking more than the set holds is ErrInsufficientAmount.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	res := cs.Clone()
	if c.IsZero() {
		return res, nil
	}
	i, ok := res.search(c.ID())
	if !ok {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "no %s", c.Ticker)
	}
	left, err := res[i].Subtract(c)
	if err != nil {
		return nil, err
	}
	if left.IsZero() {
		return append(res[:i], res[i+1:]...), nil
	}
	res[i] = &left
	return res, nil
}

// Combine returns the sum of both sets.
func (cs Coins) Combine(other Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range other {
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains reports whether Subtract(c) would succeed.
func (cs Coins) Contains(c Coin) bool {
	if c.IsZero() {
		return true
	}
	i, ok := cs.search(c.ID())
	return ok && cs[i].IsGTE(c)
}

// Get returns the amount held in ticker, a zero coin if there is none.
func (cs Coins) Get(ticker string) Coin {
	if i, ok := cs.search(ticker); ok {
		return *cs[i]
	}
	return Coin{Ticker: ticker}
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// Count is the number of tickers held.
func (cs Coins) Count() int {
	return len(cs)
}

func (cs Coins) Equals(other Coins) bool {
	if len(cs) != len(other) {
		return false
	}
	for i, c := range cs {
		if !c.Equals(*other[i]) {
			return false
		}
	}
	return true
}

// Validate checks that the set is normalized and every coin is valid.
func (cs Coins) Validate() error {
	var err error
	for i, c := range cs {
		if c == nil {
			err = errors.Append(err, errors.Wrapf(errors.ErrEmpty, "coin %d is nil", i))
			continue
		}
		err = errors.Append(err, errors.Wrapf(c.Validate(), "coin %d", i))
		if c.IsZero() {
			err = errors.Append(err, errors.Wrapf(errors.ErrState, "coin %d is zero", i))
		}
		if i > 0 && cs[i-1] != nil && cs[i-1].Ticker >= c.Ticker {
			err = errors.Append(err, errors.Wrapf(errors.ErrState, "coin %d is out of order", i))
		}
	}
	return err
}
