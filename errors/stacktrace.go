package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found while unwrapping given
// error, or nil.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// thisPkg is the import path prefix of all functions declared in this
// package. Frames from wrapping helpers are not relevant for the reader.
const thisPkg = "github.com/iov-one/goalchain/errors."

// trimInternal drops the leading frames of the wrapping helpers declared in
// this package and the trailing runtime frames. Test functions of this
// package are callers like any other and are kept.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 && isHelperFrame(st[0]) {
		st = st[1:]
	}
	for len(st) > 0 && strings.HasPrefix(funcName(st[len(st)-1]), "runtime.") {
		st = st[:len(st)-1]
	}
	return st
}

func isHelperFrame(f errors.Frame) bool {
	if !strings.HasPrefix(funcName(f), thisPkg) {
		return false
	}
	return !strings.HasSuffix(fileName(f), "_test.go")
}

func fileName(f errors.Frame) string {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	file, _ := fn.FileLine(pc)
	return file
}

func funcName(f errors.Frame) string {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// creationPoint returns a short file:line description of the frame.
func creationPoint(f errors.Frame) string {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	file, line := fn.FileLine(pc)
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
