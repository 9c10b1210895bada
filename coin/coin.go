package coin

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain/errors"
)

// IsCC matches a currency code: three or four upper case letters.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// humanFormat is "<amount> <ticker>", the space being optional.
var humanFormat = regexp.MustCompile(`^\s*(\d+)\s*([A-Z]{3,4})\s*$`)

// Coin is a whole, never negative, amount of one currency.
type Coin struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func NewCoin(amount uint64, ticker string) Coin {
	return Coin{Ticker: ticker, Amount: amount}
}

func NewCoinp(amount uint64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// coinWire gives Coin the proto.Message methods without exposing them.
type coinWire Coin

func (w *coinWire) Reset() { *w = coinWire{} }

func (w *coinWire) String() string { return proto.CompactTextString(w) }

func (*coinWire) ProtoMessage() {}

func (c *Coin) Marshal() ([]byte, error) { return proto.Marshal((*coinWire)(c)) }

func (c *Coin) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*coinWire)(c)) }

// ID is the ticker. Coins keeps one coin per ID.
func (c Coin) ID() string { return c.Ticker }

// blank is the zero coin with no ticker. It adds to anything.
func (c Coin) blank() bool { return c.Ticker == "" && c.Amount == 0 }

// Add fails with ErrCurrency for two tickers and ErrOverflow when the
// sum does not fit.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case c.blank():
		return o, nil
	case o.blank():
		return c, nil
	case !c.SameType(o):
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
	case c.Amount+o.Amount < c.Amount:
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s plus %s", c, o)
	}
	c.Amount += o.Amount
	return c, nil
}

// Subtract fails with ErrInsufficientAmount rather than go below zero.
// Subtracting any zero coin is a no-op.
func (c Coin) Subtract(o Coin) (Coin, error) {
	switch {
	case o.IsZero():
		return c, nil
	case !c.SameType(o):
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "subtracting %s from %s", o.Ticker, c.Ticker)
	case c.Amount < o.Amount:
		return Coin{}, errors.Wrapf(errors.ErrInsufficientAmount, "%s less %s", c, o)
	}
	c.Amount -= o.Amount
	return c, nil
}

// Multiply fails with ErrOverflow when the product does not fit.
func (c Coin) Multiply(times uint64) (Coin, error) {
	if times == 0 || c.Amount == 0 {
		return Coin{Ticker: c.Ticker}, nil
	}
	product := c.Amount * times
	if product/times != c.Amount {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s times %d", c, times)
	}
	c.Amount = product
	return c, nil
}

// Compare orders by amount only, ignoring the ticker.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	}
	return 0
}

func (c Coin) Equals(o Coin) bool { return c == o }

// IsEmpty is true for a nil or zero coin.
func IsEmpty(c *Coin) bool { return c == nil || c.IsZero() }

func (c Coin) IsZero() bool { return c.Amount == 0 }

func (c Coin) IsPositive() bool { return c.Amount > 0 }

// IsGTE is true when o has the same ticker and no more than c.
func (c Coin) IsGTE(o Coin) bool { return c.SameType(o) && c.Amount >= o.Amount }

func (c Coin) SameType(o Coin) bool { return c.Ticker == o.Ticker }

func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Validate only checks the ticker. Every amount is valid.
func (c Coin) Validate() error {
	if IsCC(c.Ticker) {
		return nil
	}
	return errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", c.Ticker)
}

// String is "<amount> <ticker>", or the amount alone with no ticker.
func (c Coin) String() string {
	amount := strconv.FormatUint(c.Amount, 10)
	if c.Ticker == "" {
		return amount
	}
	return amount + " " + c.Ticker
}

// ParseHumanFormat reads the String form, for example "500 GOAL".
func ParseHumanFormat(s string) (Coin, error) {
	m := humanFormat.FindStringSubmatch(s)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", s)
	}
	amount, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "invalid amount: %s", err)
	}
	return NewCoin(amount, m[2]), nil
}

// UnmarshalJSON accepts the human format string as well as an object
// with ticker and amount.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if json.Unmarshal(raw, &human) == nil {
		return c.Set(human)
	}

	// A distinct type, or json would call this method again.
	var obj struct {
		Ticker string `json:"ticker"`
		Amount uint64 `json:"amount"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = NewCoin(obj.Amount, obj.Ticker)
	return nil
}

// Set parses the human format, so a coin can be a flag.Value.
func (c *Coin) Set(s string) error {
	parsed, err := ParseHumanFormat(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
