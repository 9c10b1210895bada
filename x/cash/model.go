package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/orm"
)

// BucketName prefixes the wallets.
const BucketName = "cash"

// Set is the stored balance of a wallet, normalized as coin.Coins.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.CloneableData = (*Set)(nil)

type setWire Set

func (m *setWire) Reset()         { *m = setWire{} }
func (m *setWire) String() string { return proto.CompactTextString(m) }
func (*setWire) ProtoMessage()    {}

func (s *Set) Marshal() ([]byte, error) { return proto.Marshal((*setWire)(s)) }

func (s *Set) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*setWire)(s)) }

func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

func (s *Set) Copy() orm.CloneableData {
	return &Set{Coins: coin.Coins(s.Coins).Clone()}
}

// Wallet is the balance of one address.
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet returns an empty wallet of key.
func NewWallet(key goalchain.Address) *Wallet {
	return &Wallet{key: key, value: &Set{}}
}

// WalletWith returns a wallet of key holding the sum of coins.
func WalletWith(key goalchain.Address, coins ...*coin.Coin) (*Wallet, error) {
	w := NewWallet(key)
	if err := w.Concat(coins); err != nil {
		return nil, err
	}
	return w, nil
}

func (w Wallet) Key() []byte { return w.key }

func (w *Wallet) SetKey(key []byte) { w.key = key }

func (w Wallet) Value() goalchain.Persistent { return w.value }

// Validate requires a valid address and a normalized balance.
func (w Wallet) Validate() error {
	if err := goalchain.Address(w.key).Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	return w.value.Validate()
}

func (w *Wallet) Clone() orm.Object {
	cpy := &Wallet{value: w.value.Copy().(*Set)}
	if len(w.key) > 0 {
		cpy.key = append([]byte(nil), w.key...)
	}
	return cpy
}

// Coins is the balance. Modify it only through the wallet.
func (w Wallet) Coins() coin.Coins {
	return coin.Coins(w.value.Coins)
}

func (w *Wallet) Add(c coin.Coin) error {
	return w.update(func(cs coin.Coins) (coin.Coins, error) { return cs.Add(c) })
}

// Subtract fails with ErrInsufficientAmount if the wallet holds less
// than c.
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.update(func(cs coin.Coins) (coin.Coins, error) { return cs.Subtract(c) })
}

// Concat adds all coins, in any order and with duplicates.
func (w *Wallet) Concat(coins coin.Coins) error {
	return w.update(func(cs coin.Coins) (coin.Coins, error) { return cs.Combine(coins) })
}

// update replaces the balance with the result of fn, unless fn fails.
func (w *Wallet) update(fn func(coin.Coins) (coin.Coins, error)) error {
	cs, err := fn(w.Coins())
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Bucket stores wallets by address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewWallet(nil))}
}

// Get returns nil for an address without a wallet.
func (b Bucket) Get(db goalchain.ReadOnlyKVStore, key goalchain.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil || obj == nil {
		return nil, err
	}
	w, ok := obj.(*Wallet)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj)
	}
	return w, nil
}

// GetOrCreate returns an empty, unsaved wallet for an unknown address.
func (b Bucket) GetOrCreate(db goalchain.ReadOnlyKVStore, key goalchain.Address) (*Wallet, error) {
	w, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = NewWallet(key)
	}
	return w, nil
}

// Save deletes a wallet that became empty instead of storing it.
func (b Bucket) Save(db goalchain.KVStore, w *Wallet) error {
	if w.Coins().IsEmpty() {
		return b.Bucket.Delete(db, w.Key())
	}
	return b.Bucket.Save(db, w)
}
