package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/x/cash"
	"github.com/iov-one/goalchain/x/sigs"
	"github.com/iov-one/goalchain/x/stake"
)

// Tx is the transaction accepted by goald. It carries the signatures and
// exactly one message.
type Tx struct {
	Signatures      []*sigs.StdSignature   `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	SendMsg         *cash.SendMsg          `protobuf:"bytes,2,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	StakeTaskMsg    *stake.StakeTaskMsg    `protobuf:"bytes,3,opt,name=stake_task_msg,json=stakeTaskMsg,proto3" json:"stake_task_msg,omitempty"`
	CompleteTaskMsg *stake.CompleteTaskMsg `protobuf:"bytes,4,opt,name=complete_task_msg,json=completeTaskMsg,proto3" json:"complete_task_msg,omitempty"`
}

func (tx *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txWire)(tx)) }

func (tx *Tx) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*txWire)(tx)) }

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (goalchain.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ goalchain.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the only message of the transaction.
func (tx *Tx) GetMsg() (goalchain.Msg, error) {
	var msgs []goalchain.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.StakeTaskMsg != nil {
		msgs = append(msgs, tx.StakeTaskMsg)
	}
	if tx.CompleteTaskMsg != nil {
		msgs = append(msgs, tx.CompleteTaskMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages in one transaction", len(msgs))
	}
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes come from the data itself, not previous signatures
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}
