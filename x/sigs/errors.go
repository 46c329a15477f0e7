package sigs

import "github.com/iov-one/lockbox/errors"

// ErrInvalidSequence is returned when a signature sequence does not match
// the one stored on the signer account.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
