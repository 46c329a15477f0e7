package app

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x/cash"
	"github.com/iov-one/lockbox/x/escrow"
	"github.com/iov-one/lockbox/x/sigs"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterAmino(cdc)
}

// RegisterAmino registers every message this application can route. The
// registered names are part of the wire format and must never change.
func RegisterAmino(cdc *amino.Codec) {
	cdc.RegisterInterface((*lockbox.Msg)(nil), nil)
	cdc.RegisterConcrete(&cash.SendMsg{}, "lockbox/cash/send", nil)
	cdc.RegisterConcrete(&escrow.DepositMsg{}, "lockbox/escrow/deposit", nil)
	cdc.RegisterConcrete(&escrow.ClaimMsg{}, "lockbox/escrow/claim", nil)
}

// Tx carries a single message together with the signatures of
// everyone authorizing it.
type Tx struct {
	Msg        lockbox.Msg          `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

// make sure tx fulfills all interfaces
var _ lockbox.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction wrapping msg.
func NewTx(msg lockbox.Msg) *Tx {
	return &Tx{Msg: msg}
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (lockbox.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(tx)
}

// Unmarshal decodes the transaction. Empty input is a transaction
// without a message.
func (tx *Tx) Unmarshal(raw []byte) error {
	if len(raw) == 0 {
		*tx = Tx{}
		return nil
	}
	return cdc.UnmarshalBinaryBare(raw, tx)
}

// GetMsg returns the message carried by the transaction.
func (tx *Tx) GetMsg() (lockbox.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "missing message")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. Signatures are never part of
// the signed data.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}
