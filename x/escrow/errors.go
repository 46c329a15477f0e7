package escrow

import "github.com/iov-one/lockbox/errors"

var (
	// ErrAlreadyLocked is returned when a deposit is made while the escrow
	// holds a value.
	ErrAlreadyLocked = errors.Register(1701, "already locked")

	// ErrNoValueSent is returned when a deposit carries no value.
	ErrNoValueSent = errors.Register(1702, "no value sent")

	// ErrNotOwner is returned when the claim is not made by the owner of
	// the current deposit. This includes the case when there is no
	// deposit.
	ErrNotOwner = errors.Register(1703, "not owner")

	// ErrWrongPhrase is returned when the claim phrase does not match.
	ErrWrongPhrase = errors.Register(1704, "wrong phrase")

	// ErrTransferFailed is returned when the deposited value could not be
	// moved to the owner.
	ErrTransferFailed = errors.Register(1705, "transfer failed")
)
