package stake

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/orm"
)

const (
	// BucketName is where the escrows are stored.
	BucketName = "escrows"

	// PayloadSize is the size of an encoded escrow without its tag.
	PayloadSize = 32 + 8 + 8 + 1 + 8

	// RecordSize is the size of an encoded escrow, the tag included. This
	// is the size the storage deposit is charged for.
	RecordSize = tagSize + PayloadSize

	tagSize = 8
)

// escrowTag prefixes every encoded escrow record.
var escrowTag = func() []byte {
	h := sha256.Sum256([]byte("goalchain:escrow"))
	return h[:tagSize]
}()

// Escrow holds the value staked by an owner on a task until the owner
// completes it.
type Escrow struct {
	Owner        goalchain.Address
	TaskID       uint64
	Deadline     goalchain.UnixTime
	Completed    bool
	StakedAmount uint64
}

var _ orm.CloneableData = (*Escrow)(nil)

// Validate ensures the escrow can be stored. A completed escrow is never
// stored, it is deleted instead.
func (e *Escrow) Validate() error {
	var errs error
	if err := e.Owner.Validate(); err != nil {
		errs = errors.AppendField(errs, "Owner", err)
	}
	if e.Completed {
		errs = errors.Append(errs, errors.Field("Completed", errors.ErrState, "completed escrow cannot be stored"))
	}
	return errs
}

// Copy returns a deep copy of this escrow.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Owner:        e.Owner.Clone(),
		TaskID:       e.TaskID,
		Deadline:     e.Deadline,
		Completed:    e.Completed,
		StakedAmount: e.StakedAmount,
	}
}

// Marshal encodes the escrow into its fixed size record. Integers are
// little-endian.
func (e *Escrow) Marshal() ([]byte, error) {
	if len(e.Owner) != goalchain.AddressLength {
		return nil, errors.Wrapf(errors.ErrModel, "owner must be %d bytes", goalchain.AddressLength)
	}
	raw := make([]byte, RecordSize)
	copy(raw, escrowTag)
	p := raw[tagSize:]
	copy(p[:32], e.Owner)
	binary.LittleEndian.PutUint64(p[32:40], e.TaskID)
	binary.LittleEndian.PutUint64(p[40:48], uint64(e.Deadline))
	if e.Completed {
		p[48] = 1
	}
	binary.LittleEndian.PutUint64(p[49:57], e.StakedAmount)
	return raw, nil
}

// Unmarshal decodes a record produced by Marshal.
func (e *Escrow) Unmarshal(raw []byte) error {
	if len(raw) != RecordSize {
		return errors.Wrapf(errors.ErrModel, "escrow record must be %d bytes, got %d", RecordSize, len(raw))
	}
	if !bytes.Equal(raw[:tagSize], escrowTag) {
		return errors.Wrap(errors.ErrModel, "not an escrow record")
	}
	p := raw[tagSize:]
	var completed bool
	switch p[48] {
	case 0:
	case 1:
		completed = true
	default:
		return errors.Wrapf(errors.ErrModel, "invalid completed flag %d", p[48])
	}
	*e = Escrow{
		Owner:        goalchain.Address(append([]byte(nil), p[:32]...)),
		TaskID:       binary.LittleEndian.Uint64(p[32:40]),
		Deadline:     goalchain.UnixTime(int64(binary.LittleEndian.Uint64(p[40:48]))),
		Completed:    completed,
		StakedAmount: binary.LittleEndian.Uint64(p[49:57]),
	}
	return nil
}

// IsReleasable returns true if the escrow can still be completed at the given
// time. The deadline itself is included.
func (e *Escrow) IsReleasable(now goalchain.UnixTime) bool {
	return !e.Deadline.Passed(now)
}

// EscrowKey returns the key an escrow of the owner for the task is stored
// under.
func EscrowKey(owner goalchain.Address, taskID uint64) []byte {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], taskID)
	return key
}

// Condition returns the condition that owns the value held by the escrow
// stored under the given key.
func Condition(key []byte) goalchain.Condition {
	return goalchain.NewCondition("stake", "escrow", key)
}

// CustodyAddress returns the account holding the value of the escrow stored
// under the given key.
func CustodyAddress(key []byte) goalchain.Address {
	return Condition(key).Address()
}

// NewEscrowObj wraps an escrow into an orm object stored under its key.
func NewEscrowObj(e *Escrow) orm.Object {
	var key []byte
	if e != nil {
		key = EscrowKey(e.Owner, e.TaskID)
	}
	return orm.NewSimpleObj(key, e)
}

// Bucket is a type-safe wrapper around orm.Bucket.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns a bucket for escrows.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Escrow))),
	}
}

// GetEscrow returns the escrow stored under the key, or nil if there is none.
func (b Bucket) GetEscrow(db goalchain.ReadOnlyKVStore, key []byte) (*Escrow, error) {
	obj, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, nil
	}
	e, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return e, nil
}

// Create stores a new escrow. It fails if an escrow for the same owner and
// task exists already.
func (b Bucket) Create(db goalchain.KVStore, e *Escrow) ([]byte, error) {
	key := EscrowKey(e.Owner, e.TaskID)
	switch has, err := b.Has(db, key); {
	case err != nil:
		return nil, err
	case has:
		return nil, errors.Wrapf(ErrDuplicateEscrow, "task %d", e.TaskID)
	}
	if err := b.Save(db, NewEscrowObj(e)); err != nil {
		return nil, err
	}
	return key, nil
}

// ByOwner returns all escrows of the owner, ordered by task id.
func (b Bucket) ByOwner(db goalchain.ReadOnlyKVStore, owner goalchain.Address) ([]*Escrow, error) {
	models, err := b.Query(db, goalchain.PrefixQueryMod, owner)
	if err != nil {
		return nil, err
	}
	escrows := make([]*Escrow, 0, len(models))
	for _, m := range models {
		var e Escrow
		if err := e.Unmarshal(m.Value); err != nil {
			return nil, errors.Wrapf(err, "key %X", m.Key)
		}
		escrows = append(escrows, &e)
	}
	return escrows, nil
}
