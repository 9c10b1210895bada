package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/crypto"
	"github.com/iov-one/goalchain/errors"
)

// SignCodeV1 starts the sign bytes of every signature.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the digest a key signs for a transaction on a
// chain. It is the sha512 sum of
//
//	SignCodeV1 | len(chainID) as one byte | chainID | seq as 8 byte big endian | signBytes
//
// so that a signature cannot be replayed on another chain or with another
// nonce.
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "negative sequence %d", seq)
	}
	if !goalchain.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	h.Write(nonce[:])
	h.Write(signBytes)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes for the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	return BuildSignBytes(raw, chainID, seq)
}

// SignTx signs tx for the given chain and nonce.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}

// VerifyTxSignatures checks every signature of tx and returns the
// conditions of the signers, in signature order. A single bad signature
// fails the whole transaction.
func VerifyTxSignatures(db goalchain.KVStore, tx SignedTx, chainID string) ([]goalchain.Condition, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	sigs := tx.GetSignatures()
	signers := make([]goalchain.Condition, len(sigs))
	for i, sig := range sigs {
		if signers[i], err = VerifySignature(db, sig, raw, chainID); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
	}
	return signers, nil
}

// VerifySignature checks one signature and consumes its nonce. The account
// of the key is created on first use.
func VerifySignature(db goalchain.KVStore, sig *StdSignature, signBytes []byte, chainID string) (goalchain.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	bucket := NewBucket()
	obj, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	user := AsUser(obj)
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "save nonce")
	}
	return user.Pubkey.Condition(), nil
}
