package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain/crypto"
	"github.com/iov-one/goalchain/errors"
)

// SignedTx is a transaction the Decorator can authenticate. The sign
// bytes must be a canonical encoding of the message, usually the
// original bytes of the request.
type SignedTx interface {
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// StdSignature is one signature over the sign bytes, with the key that
// made it and the sequence of that key.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

type stdSignatureWire StdSignature

func (w *stdSignatureWire) Reset() { *w = stdSignatureWire{} }

func (w *stdSignatureWire) String() string { return proto.CompactTextString(w) }

func (*stdSignatureWire) ProtoMessage() {}

func (s *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignatureWire)(s)) }

func (s *StdSignature) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*stdSignatureWire)(s)) }

// Validate checks the form only. The signature itself is checked by
// VerifySignature.
func (s *StdSignature) Validate() error {
	switch {
	case s.Sequence < 0:
		return errors.Wrapf(ErrInvalidSequence, "negative sequence %d", s.Sequence)
	case s.Pubkey == nil, len(s.Pubkey.Ed25519) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	case s.Signature == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
