package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		in    error
		debug bool
		code  uint32
		log   string
	}{
		"plain registered error": {
			in:   ErrNotFound,
			log:  "not found",
			code: ErrNotFound.code,
		},
		"wrapped registered error": {
			in:   Wrap(Wrapf(ErrNotFound, "task %d", 7), "complete"),
			log:  "complete: task 7: not found",
			code: ErrNotFound.code,
		},
		"field error": {
			in:   Field("Deadline", ErrInput, "negative"),
			log:  `field "Deadline": negative: invalid input`,
			code: ErrInput.code,
		},
		"panic value is hidden": {
			in:   Wrapf(ErrPanic, "runtime error: %s", "/home/node/goalchain.db"),
			log:  "panic",
			code: ErrPanic.code,
		},
		"nil is empty message": {
			in:   nil,
			log:  "",
			code: 0,
		},
		"nil registered error is not an error": {
			in:   (*Error)(nil),
			log:  "",
			code: 0,
		},
		"stdlib is generic message": {
			in:   io.EOF,
			log:  "internal error",
			code: 1,
		},
		"stdlib returns error message in debug mode": {
			in:    io.EOF,
			debug: true,
			log:   "EOF",
			code:  1,
		},
		"wrapped stdlib error without a code": {
			in:   fmt.Errorf("open: %w", io.ErrUnexpectedEOF),
			log:  "internal error",
			code: 1,
		},
		"wrapped stdlib is only a generic message": {
			in:   Wrap(io.EOF, "cannot read file"),
			log:  "internal error",
			code: 1,
		},
		"appended errors use the first code": {
			in:   Append(ErrEmpty, ErrState),
			code: ErrEmpty.code,
			log:  "2 errors occurred:\n\t* value is empty\n\t* invalid state\n",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.in, tc.debug)
			if code != tc.code || log != tc.log {
				t.Errorf("want (%d, %q), got (%d, %q)", tc.code, tc.log, code, log)
			}
		})
	}
}
