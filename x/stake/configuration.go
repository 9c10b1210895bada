package stake

import (
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/gconf"
)

const packageName = "stake"

// Configuration is stored in the database under the "stake" package.
type Configuration struct {
	// Ticker is the currency escrow values are denominated in.
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// StorageRate is the deposit charged for every byte of an escrow
	// record. It is refunded together with the stake.
	StorageRate uint64 `protobuf:"varint,2,opt,name=storage_rate,json=storageRate,proto3" json:"storage_rate,omitempty"`
}

func (c *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationWire)(c)) }

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(c))
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if !coin.IsCC(c.Ticker) {
		return errors.Field("Ticker", errors.ErrCurrency, "invalid ticker")
	}
	if _, err := StorageDeposit(*c); err != nil {
		return errors.Field("StorageRate", err, "deposit does not fit a coin")
	}
	return nil
}

// StorageDeposit returns the amount charged for storing one escrow record.
func StorageDeposit(c Configuration) (uint64, error) {
	if c.StorageRate > math.MaxUint64/RecordSize {
		return 0, errors.Wrapf(errors.ErrOverflow, "storage rate %d", c.StorageRate)
	}
	return RecordSize * c.StorageRate, nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
