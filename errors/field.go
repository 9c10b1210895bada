package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field attaches err to a message field, named the Go way ("Deadline",
// or "Amount.Ticker" when nested). The description is formatted with
// args. A nil err gives nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{field: name, desc: description, parent: err}
}

// AppendField adds fieldErr, attached to name, to errs. Either may be nil.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q", e.field)
	if e.desc != "" {
		msg += ": " + e.desc
	}
	return msg + ": " + e.parent.Error()
}

func (e *fieldError) Cause() error { return e.parent }

func (e *fieldError) Field() string { return e.field }

type fielder interface {
	Field() string
}

// FieldErrors walks err, including every group in it, and collects the
// errors attached to the named field. A matching field error is
// returned whole and not searched further.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == name {
			return append(found, err)
		}
		switch e := err.(type) {
		case unpacker:
			for _, sub := range e.Unpack() {
				found = append(found, FieldErrors(sub, name)...)
			}
			return found
		case causer:
			err = e.Cause()
		default:
			return found
		}
	}
	return found
}

// Append joins errs into one error, flattening nested groups and
// skipping nils. It is nil when nothing is left. The group reports the
// ABCI code of its first error.
func Append(errs ...error) error {
	var group multiErr
	for _, err := range errs {
		switch e := err.(type) {
		case multiErr:
			group = append(group, e...)
		default:
			if !isNilErr(err) {
				group = append(group, err)
			}
		}
	}
	if len(group) == 0 {
		return nil
	}
	return group
}

type multiErr []error

func (m multiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:", len(m))
	for _, err := range m {
		fmt.Fprintf(&b, "\n\t* %s", err)
	}
	b.WriteString("\n")
	return b.String()
}

func (m multiErr) Unpack() []error { return m }

func (m multiErr) ABCICode() uint32 { return abciCode(m[0]) }
