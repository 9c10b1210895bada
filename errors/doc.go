/*
Package errors implements the error registry used by all goalchain packages.

Reuse the root errors declared here wherever possible and register a custom
error only when an extension needs a code of its own, for example

	ErrDuplicateEscrow = errors.Register(1400, "duplicate escrow")

Code stands for ABCI error code, which allows to distinguish types of errors
on the client side and act accordingly.

Create errors with ErrXyz.New("...") or errors.Wrap(err, "...") at the point
of failure so that a stacktrace is attached. Only the innermost wrap records
a stacktrace.

	%s is just the error message
	%v appends a compressed [filename:line] where the error was created
	%+v is the full stack trace
*/
package errors
