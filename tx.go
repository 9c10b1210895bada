package goalchain

import (
	"reflect"

	"github.com/iov-one/goalchain/errors"
)

// Msg is a request for a state transition, like staking on a task. It is
// not authenticated, the signatures travel in the Tx carrying it.
type Msg interface {
	Persistent

	// Path routes the message to its Handler, for example
	// "stake/complete_task". It may only contain [0-9A-Za-z_/].
	Path() string

	// Validate checks everything that can be checked without reading the
	// state.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent is a Marshaller that can also be restored, which usually
// requires a pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is what a client submits: exactly one message plus whatever the
// decorators need, like signatures. Each application defines its own.
type Tx interface {
	Persistent

	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// ExtractMsg returns the message of the transaction. A transaction without
// a message is an ErrState.
func ExtractMsg(tx Tx) (Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrState, "nil message")
	}
	return msg, nil
}

// GetPath returns the path of the message, or (missing) if there is none.
// It is meant for logging.
func GetPath(tx Tx) string {
	if msg, err := ExtractMsg(tx); err == nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg validates the message of the transaction and copies it into
// destination, which must be a non nil pointer to the message type.
//
//	var msg StakeTaskMsg
//	if err := LoadMsg(tx, &msg); err != nil {
//		return err
//	}
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := ExtractMsg(tx)
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non nil pointer, got %T", destination)
	}
	src := reflect.Indirect(reflect.ValueOf(msg))
	if src.Type() != dest.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dest.Elem().Set(src)
	return nil
}
