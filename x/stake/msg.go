package stake

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// StakeTaskMsg creates an escrow and moves the stake into its custody.
type StakeTaskMsg struct {
	// Owner is the staking party. The main signer is used when empty.
	Owner       goalchain.Address  `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/goalchain.Address" json:"owner,omitempty"`
	TaskID      uint64             `protobuf:"varint,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Deadline    goalchain.UnixTime `protobuf:"varint,3,opt,name=deadline,proto3,casttype=github.com/iov-one/goalchain.UnixTime" json:"deadline,omitempty"`
	StakeAmount uint64             `protobuf:"varint,4,opt,name=stake_amount,json=stakeAmount,proto3" json:"stake_amount,omitempty"`
}

func (m *StakeTaskMsg) Marshal() ([]byte, error) { return proto.Marshal((*stakeTaskMsgWire)(m)) }

func (m *StakeTaskMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stakeTaskMsgWire)(m))
}

type stakeTaskMsgWire StakeTaskMsg

func (m *stakeTaskMsgWire) Reset()         { *m = stakeTaskMsgWire{} }
func (m *stakeTaskMsgWire) String() string { return proto.CompactTextString(m) }
func (*stakeTaskMsgWire) ProtoMessage()    {}

var _ goalchain.Msg = (*StakeTaskMsg)(nil)

// Path returns the routing path for this message.
func (StakeTaskMsg) Path() string {
	return "stake/stake_task"
}

// Validate ensures the owner, if given, is an address. The deadline is not
// compared with the current time, an escrow may be created already expired.
func (m *StakeTaskMsg) Validate() error {
	if m.Owner != nil {
		if err := m.Owner.Validate(); err != nil {
			return errors.Field("Owner", err, "invalid owner")
		}
	}
	return nil
}

// CompleteTaskMsg completes the task of an escrow and returns the escrowed
// value to its owner.
type CompleteTaskMsg struct {
	Owner  goalchain.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/goalchain.Address" json:"owner,omitempty"`
	TaskID uint64            `protobuf:"varint,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *CompleteTaskMsg) Marshal() ([]byte, error) { return proto.Marshal((*completeTaskMsgWire)(m)) }

func (m *CompleteTaskMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*completeTaskMsgWire)(m))
}

type completeTaskMsgWire CompleteTaskMsg

func (m *completeTaskMsgWire) Reset()         { *m = completeTaskMsgWire{} }
func (m *completeTaskMsgWire) String() string { return proto.CompactTextString(m) }
func (*completeTaskMsgWire) ProtoMessage()    {}

var _ goalchain.Msg = (*CompleteTaskMsg)(nil)

// Path returns the routing path for this message.
func (CompleteTaskMsg) Path() string {
	return "stake/complete_task"
}

// Validate requires the owner, as it is part of the escrow key.
func (m *CompleteTaskMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner")
	}
	return nil
}

// Key returns the key of the escrow this message completes.
func (m *CompleteTaskMsg) Key() []byte {
	return EscrowKey(m.Owner, m.TaskID)
}
