package sigs

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/weavetest"
)

// StdTx is a mock transaction signed with StdSignatures
type StdTx struct {
	goalchain.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ goalchain.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &weavetest.Msg{RoutePath: "test/mock", Serialized: payload}
	return &StdTx{Tx: &weavetest.Tx{Msg: msg}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
