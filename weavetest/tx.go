package weavetest

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// Tx carries Msg. GetMsg returns Err next to it, which lets a test fail
// the decoding of the message.
type Tx struct {
	Msg goalchain.Msg
	Err error
}

var _ goalchain.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (goalchain.Msg, error) {
	return tx.Msg, tx.Err
}

// Marshal and Unmarshal fail, a Tx only lives in memory.
func (tx *Tx) Marshal() ([]byte, error) {
	return nil, errors.Wrap(errors.ErrHuman, "weavetest.Tx cannot be serialized")
}

func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "weavetest.Tx cannot be serialized")
}

// Msg is routed by RoutePath and serializes to Serialized. Err, when set,
// is returned by Validate, Marshal and Unmarshal.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ goalchain.Msg = (*Msg)(nil)

func (m *Msg) Path() string { return m.RoutePath }

func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Marshal() ([]byte, error) { return m.Serialized, m.Err }

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
