package lockboxtest

import "github.com/iov-one/lockbox"

// Tx is a transaction carrying a single message. A non nil Err is returned
// by GetMsg.
type Tx struct {
	Msg lockbox.Msg
	Err error
}

var _ lockbox.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (lockbox.Msg, error) {
	return tx.Msg, tx.Err
}

// Marshal and Unmarshal are not needed by any handler and must not be
// called.
func (tx *Tx) Marshal() ([]byte, error) { panic("lockboxtest.Tx cannot be serialized") }
func (tx *Tx) Unmarshal([]byte) error   { panic("lockboxtest.Tx cannot be deserialized") }

// Msg is a message routed to RoutePath. Every method fails with Err if set.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ lockbox.Msg = (*Msg)(nil)

func (m *Msg) Path() string             { return m.RoutePath }
func (m *Msg) Validate() error          { return m.Err }
func (m *Msg) Marshal() ([]byte, error) { return m.Serialized, m.Err }

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
