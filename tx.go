package lockbox

import (
	"reflect"

	"github.com/iov-one/lockbox/errors"
)

// Msg is a request for a state transition. It carries no authentication
// data; signatures live in the wrapping Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler. It matches
	// [0-9A-Za-z_\-/]+, for example "escrow/deposit".
	Path() string

	// Validate checks the message on its own, without looking at the
	// state.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent is a Marshaller that can be loaded back. Implementations
// usually need a pointer receiver for Unmarshal.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is what a client submits: a single message together with whatever the
// decorators need to authenticate it. Each application defines its own
// transaction type.
type Tx interface {
	Persistent

	GetMsg() (Msg, error)
}

// GetPath returns the route of the transaction message, used for logging.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder parses a transaction submitted to the chain.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}

	// Reflection is used here to set the destination with the message
	// carried by the transaction, without knowing its type upfront.
	src := reflect.ValueOf(msg)
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	if src.Kind() != reflect.Ptr || src.IsNil() {
		return errors.Wrapf(errors.ErrType, "message %T cannot be loaded", msg)
	}
	if src.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dest.Elem().Set(src.Elem())

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
