package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/crypto"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/orm"
)

// BucketName prefixes the accounts of every public key that signed.
const BucketName = "sigs"

// maxSequence is the largest nonce a JavaScript client can represent,
// Number.MAX_SAFE_INTEGER.
const maxSequence = 1<<53 - 1

// UserData is the account of a public key. Sequence is the nonce the next
// signature of that key must carry.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.CloneableData = (*UserData)(nil)

type userDataWire UserData

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

func (u *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDataWire)(u)) }

func (u *UserData) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*userDataWire)(u)) }

// Validate rejects a negative sequence, and a used account without a key.
func (u *UserData) Validate() error {
	switch {
	case u.Sequence < 0:
		return errors.Field("Sequence", ErrInvalidSequence, "negative")
	case u.Sequence > 0 && u.Pubkey == nil:
		return errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey")
	}
	return nil
}

func (u *UserData) Copy() orm.CloneableData {
	cpy := *u
	return &cpy
}

// CheckAndIncrementSequence consumes the nonce expected. It fails if
// expected is not the current sequence or the next one would overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", u.Sequence, expected)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence++
	return nil
}

// SetPubkey assigns the key of a new account. It panics if a key is set
// already, an account never changes its key.
func (u *UserData) SetPubkey(pubkey *crypto.PublicKey) {
	if u.Pubkey != nil {
		panic("cannot change the pubkey of an account")
	}
	u.Pubkey = pubkey
}

// AsUser returns the account held by obj, nil for a missing one.
func AsUser(obj orm.Object) *UserData {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*UserData)
}

// NewUser returns a fresh account of pubkey, stored under its address.
func NewUser(pubkey *crypto.PublicKey) orm.Object {
	var key goalchain.Address
	if pubkey != nil {
		key = pubkey.Address()
	}
	return orm.NewSimpleObj(key, &UserData{Pubkey: pubkey})
}

// Bucket stores accounts by the address of their key.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewUser(nil))}
}

// GetOrCreate loads the account of pubkey or returns a new one, unsaved.
func (b Bucket) GetOrCreate(db goalchain.ReadOnlyKVStore, pubkey *crypto.PublicKey) (orm.Object, error) {
	obj, err := b.Get(db, pubkey.Address())
	if err != nil {
		return nil, errors.Wrap(err, "load account")
	}
	if obj == nil {
		obj = NewUser(pubkey)
	}
	return obj, nil
}

// NextNonce returns the sequence the next signature of signer must use.
// An address that never signed starts at zero.
func NextNonce(db goalchain.ReadOnlyKVStore, signer goalchain.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "load account")
	}
	if u := AsUser(obj); u != nil {
		return u.Sequence, nil
	}
	return 0, nil
}
