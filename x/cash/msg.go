package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
)

// Ensure we implement the Msg interface
var _ goalchain.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// SendMsg moves coins from the source to the destination wallet. The
// source must sign the transaction.
type SendMsg struct {
	Source      goalchain.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination goalchain.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      *coin.Coin        `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string            `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Marshal() ([]byte, error) { return proto.Marshal((*sendMsgWire)(m)) }

func (m *SendMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*sendMsgWire)(m)) }

type sendMsgWire SendMsg

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(m.Amount) {
		err = errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %v", m.Amount)
	} else {
		err = errors.AppendField(err, "Amount", m.Amount.Validate())
	}
	err = errors.AppendField(err, "Source", m.Source.Validate())
	err = errors.AppendField(err, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		err = errors.AppendField(err, "Memo", errors.Wrap(errors.ErrState, "memo too long"))
	}
	return err
}
