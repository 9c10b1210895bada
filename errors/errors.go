package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all extensions. Codes 1 to 99 belong to this
// package, extensions register their own from 100 up.
var (
	// ErrUnauthorized means a required signature is missing.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound means a record, a route or a configuration is missing.
	ErrNotFound = Register(3, "not found")

	// ErrModel means a record fails its validation and cannot be stored.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate means a record with the same key exists already.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that a correctly wired application never
	// reaches, like a handler running without a block time.
	ErrHuman = Register(7, "coding error")

	// ErrCurrency means a ticker is malformed or two amounts do not share
	// the ticker.
	ErrCurrency = Register(8, "invalid currency code")

	ErrEmpty = Register(9, "value is empty")

	ErrState = Register(10, "invalid state")

	// ErrType means a value is not of the expected Go type.
	ErrType = Register(11, "invalid type")

	// ErrInsufficientAmount means a wallet cannot cover a payment.
	ErrInsufficientAmount = Register(12, "insufficient amount")

	// ErrAmount means an amount is malformed, for example negative.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput means a request cannot be decoded or is malformed.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow means a sum exceeds the range of its type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase means the storage failed.
	ErrDatabase = Register(17, "database")

	// ErrPanic wraps a recovered panic. Its message may reveal details of
	// the host and is only shown in debug mode.
	ErrPanic = Register(111222, "panic")
)

// usedCodes tracks all registered codes. Code 1 is the internal error.
var usedCodes = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register declares a root error with a code no other error has. It panics
// on a reused code, so call it only from package level variables.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// Error is a root error. Errors created at runtime wrap one of them, which
// gives the client the code and tells tests what kind of failure happened.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode is the code reported to tendermint clients.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New wraps this root error with a description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is reports whether err is this root error or wraps it. Grouped errors
// match if any of them does. A nil kind only matches nil, including typed
// nil pointers.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return isNilErr(err)
	}
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e == kind
		}
		switch x := err.(type) {
		case unpacker:
			for _, e := range x.Unpack() {
				if kind.Is(e) {
					return true
				}
			}
			return false
		case causer:
			err = x.Cause()
		default:
			return false
		}
	}
	return false
}

// Wrap adds a description to err and returns nil for a nil err. The
// innermost wrap records the stack trace.
//
// Wrapping an error that has no code, like one from the standard library,
// makes it an internal error.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithType wraps err with the Go type of obj.
func WithType(err error, obj interface{}) error {
	return Wrapf(err, "%T", obj)
}

// Recover turns a panic into an ErrPanic assigned to err. Defer it.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the message for %s, the message followed by the point of
// creation for %v and the message with the whole stack trace for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprint(s, e.Error())
		return
	}
	frames := trimInternal(stackTrace(e))
	switch {
	case s.Flag('+'):
		fmt.Fprintf(s, "%s%+v", e.Error(), frames)
	case len(frames) > 0:
		fmt.Fprintf(s, "%s [%s]", e.Error(), creationPoint(frames[0]))
	default:
		fmt.Fprint(s, e.Error())
	}
}

// causer is implemented by errors wrapping another one.
type causer interface {
	Cause() error
}

// unpacker is implemented by errors grouping several.
type unpacker interface {
	Unpack() []error
}

// isNilErr also treats a typed nil pointer as nil.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
