package orm

import (
	"reflect"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/x"
)

// Object is a record of a Bucket: a key, without the bucket prefix, and
// the value stored under it.
type Object interface {
	Keyed
	Cloneable
	x.Validater
	Value() goalchain.Persistent
}

type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable makes the empty object a bucket decodes into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is a model that a SimpleObj can hold.
type CloneableData interface {
	x.Validater
	goalchain.Persistent
	Copy() CloneableData
}

// SimpleObj is the Object every model of this repo is stored as.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte { return o.key }

func (o *SimpleObj) SetKey(key []byte) { o.key = key }

func (o SimpleObj) Value() goalchain.Persistent { return o.value }

// Validate requires a key and a value, and then validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone deep copies the object. A typed nil value, as in the prototype of
// a bucket, is replaced by a new zero value of its type so the copy can be
// decoded into.
func (o *SimpleObj) Clone() Object {
	var cpy SimpleObj
	if len(o.key) > 0 {
		cpy.key = append([]byte(nil), o.key...)
	}
	switch v := reflect.ValueOf(o.value); {
	case o.value == nil:
	case v.Kind() == reflect.Ptr && v.IsNil():
		cpy.value = reflect.New(v.Type().Elem()).Interface().(CloneableData)
	default:
		cpy.value = o.value.Copy()
	}
	return &cpy
}
