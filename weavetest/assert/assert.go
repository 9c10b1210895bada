/*
Package assert contains the few checks that handler tests repeat. Every
check stops the test when it fails.

Errors are compared by their root error, so a test states only which
registered error it expects and not the message it was wrapped with.
*/
package assert

import (
	"reflect"

	"github.com/iov-one/goalchain/errors"
	"github.com/stretchr/testify/assert"
)

// Tester is the part of testing.TB the checks need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails unless value is nil or a nil pointer, slice, map or similar.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of our errors.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails unless both values are deeply equal. Byte slices are
// compared by content.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !assert.ObjectsAreEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if panicked, _ := recovered(fn); !panicked {
		t.Fatal("panic expected")
	}
}

func recovered(fn func()) (panicked bool, value interface{}) {
	defer func() {
		if value = recover(); value != nil {
			panicked = true
		}
	}()
	fn()
	return false, nil
}

// IsErr fails unless got is want or wraps it. A nil want requires a nil
// got.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Fatalf("want no error, got %+v", got)
		}
		return
	}
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails unless err holds exactly one error for the field and
// that error is of the wanted kind. With a nil want it fails if there is
// any error for the field.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(errs) == 0:
	case want == nil:
		t.Fatalf("want no %q field error, got %q", field, errs)
	case len(errs) != 1:
		t.Fatalf("want one %q field error, got %q", field, errs)
	case !want.Is(errs[0]):
		t.Fatalf("want %q field error of kind %q, got %q", field, want, errs[0])
	}
}
