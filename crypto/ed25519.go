// Package crypto holds the ed25519 keys transactions are signed with,
// and the conditions and addresses derived from them.
package crypto

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is the extension part of every signature condition.
const ExtensionName = "sigs"

// PubKey verifies signatures for one condition.
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() goalchain.Condition
}

// Signer only signs. It never exposes the private key, so it can be a
// hardware device.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var (
	_ PubKey = (*PublicKey)(nil)
	_ Signer = (*PrivateKey)(nil)
)

// Verify is false for any malformed key or signature.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	switch {
	case p == nil, len(p.Ed25519) != ed25519.PublicKeySize:
		return false
	case len(sig.GetEd25519()) != ed25519.SignatureSize:
		return false
	}
	return ed25519.Verify(p.Ed25519, message, sig.GetEd25519())
}

// Condition is "sigs/ed25519/<key>", or nil for an empty key.
func (p *PublicKey) Condition() goalchain.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return goalchain.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address of the key condition, nil for an empty key.
func (p *PublicKey) Address() goalchain.Address {
	return p.Condition().Address()
}

func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrState, "invalid private key")
	}
	return &Signature{Ed25519: ed25519.Sign(p.Ed25519, message)}, nil
}

func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 reads a new key from crypto/rand and panics if that
// fails.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed derives a key from a 32 byte seed. Tests use it
// for fixed keys. Any other seed length panics.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
