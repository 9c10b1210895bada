package weavetest

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/crypto"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() goalchain.Condition {
	return NewKey().PublicKey().Condition()
}
