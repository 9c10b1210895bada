package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain/errors"
)

// Counter is a minimal model used to exercise the buckets.
type Counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

var _ CloneableData = (*Counter)(nil)

func (c *Counter) Marshal() ([]byte, error) { return proto.Marshal((*counterWire)(c)) }

func (c *Counter) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*counterWire)(c)) }

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

type counterWire Counter

func (m *counterWire) Reset()         { *m = counterWire{} }
func (m *counterWire) String() string { return proto.CompactTextString(m) }
func (*counterWire) ProtoMessage()    {}
