package cash

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
)

// Ensure we implement the Msg interface
var _ lockbox.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// SendMsg moves coins from the source to the destination wallet.
type SendMsg struct {
	Source      lockbox.Address `json:"source"`
	Destination lockbox.Address `json:"destination"`
	Amount      *coin.Coin      `json:"amount"`
	Memo        string          `json:"memo,omitempty"`
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

func (s *SendMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *SendMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %v", s.Amount)
	}
	if err := s.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := s.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := s.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(s.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrState, "memo too long")
	}
	return nil
}
