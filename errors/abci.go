package errors

import "fmt"

const (
	// SuccessABCICode is the code of every successful ABCI response.
	SuccessABCICode = 0

	// Errors that do not wrap a registered error share this code. Their
	// message is hidden outside of debug mode because it can carry
	// details of the host, like file paths.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and the log of the ABCI response describing
// err.
//
// A registered error reports its own code and full message. Anything else
// is reported as an internal error. A recovered panic keeps its code but
// not the panic value. In debug mode every message is returned together
// with its stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	case ErrPanic.Is(err):
		return code, ErrPanic.desc
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the cause chain that
// declares one.
func abciCode(err error) uint32 {
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
