package stake

import "github.com/iov-one/goalchain/errors"

// Error codes of this extension are in the 1400 range.
var (
	ErrDuplicateEscrow = errors.Register(1400, "escrow already exists")
	ErrNotOwner        = errors.Register(1401, "not the escrow owner")
	ErrDeadlinePassed  = errors.Register(1402, "deadline passed")

	// ErrInsufficientFunds is returned when the owner cannot pay for the
	// stake and the storage deposit.
	ErrInsufficientFunds = errors.ErrInsufficientAmount

	// ErrNotFound is returned when no escrow exists for a key.
	ErrNotFound = errors.ErrNotFound
)
