package escrow

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
)

const (
	pathDepositMsg = "escrow/deposit"
	pathClaimMsg   = "escrow/claim"
)

var _ lockbox.Msg = (*DepositMsg)(nil)

// DepositMsg locks the attached amount in the escrow. The signer becomes the
// owner of the deposit.
type DepositMsg struct {
	Amount *coin.Coin `json:"amount,omitempty"`
}

// Path returns the routing path for this message.
func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Validate accepts a missing or zero amount; it is rejected by the escrow
// itself.
func (m *DepositMsg) Validate() error {
	if coin.IsEmpty(m.Amount) {
		return nil
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative deposit")
	}
	return nil
}

// Value returns the attached amount. A missing amount is zero.
func (m *DepositMsg) Value() coin.Coin {
	if m.Amount == nil {
		return coin.Coin{}
	}
	return *m.Amount
}

var _ lockbox.Msg = (*ClaimMsg)(nil)

// ClaimMsg releases the deposit to its owner.
type ClaimMsg struct {
	Phrase string `json:"phrase"`
}

// Path returns the routing path for this message.
func (ClaimMsg) Path() string {
	return pathClaimMsg
}

func (m *ClaimMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ClaimMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// Validate always succeeds. Any phrase can be presented.
func (m *ClaimMsg) Validate() error {
	return nil
}
