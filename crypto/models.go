package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeyWire)(m)) }

func (m *PublicKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*publicKeyWire)(m)) }

// PrivateKey is an ed25519 private key, seed followed by the public part.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeyWire)(m)) }

func (m *PrivateKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*privateKeyWire)(m)) }

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signatureWire)(m)) }

func (m *Signature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*signatureWire)(m)) }

// GetEd25519 returns the raw signature, nil safe.
func (m *Signature) GetEd25519() []byte {
	if m == nil {
		return nil
	}
	return m.Ed25519
}

type publicKeyWire PublicKey

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

type privateKeyWire PrivateKey

func (m *privateKeyWire) Reset()         { *m = privateKeyWire{} }
func (m *privateKeyWire) String() string { return proto.CompactTextString(m) }
func (*privateKeyWire) ProtoMessage()    {}

type signatureWire Signature

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}
