package escrow

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/errors"
)

// SecretPhrase must be presented, byte for byte, to claim a deposit.
const SecretPhrase = "Hello, World!"

// State of the escrow.
type State int

const (
	// StateEmpty means no value is held.
	StateEmpty State = iota
	// StateLocked means a deposit is held for its owner.
	StateLocked
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Machine is the escrow state machine. Calls must be serialized by the
// caller, each working on its own store.
type Machine struct {
	bucket Bucket
	vault  Vault
	sink   EventSink
}

// NewMachine returns a machine that keeps value in given vault and reports
// to given sink. A nil sink discards all events.
func NewMachine(vault Vault, sink EventSink) *Machine {
	if sink == nil {
		sink = DiscardSink{}
	}
	return &Machine{
		bucket: NewBucket(),
		vault:  vault,
		sink:   sink,
	}
}

// WithSink returns a copy of the machine that reports to given sink.
func (m *Machine) WithSink(sink EventSink) *Machine {
	cp := *m
	cp.sink = sink
	return &cp
}

// Current returns the deposit held, or nil when the escrow is empty.
func (m *Machine) Current(db lockbox.ReadOnlyKVStore) (*Deposit, error) {
	return m.bucket.Current(db)
}

// State returns the current state of the escrow.
func (m *Machine) State(db lockbox.ReadOnlyKVStore) (State, error) {
	d, err := m.bucket.Current(db)
	if err != nil {
		return StateEmpty, err
	}
	if d == nil {
		return StateEmpty, nil
	}
	return StateLocked, nil
}

// Deposit locks value in the escrow on behalf of caller.
func (m *Machine) Deposit(ctx context.Context, db lockbox.KVStore, caller lockbox.Address, value coin.Coin) error {
	current, err := m.bucket.Current(db)
	if err != nil {
		return err
	}
	if current != nil {
		return errors.Wrapf(ErrAlreadyLocked, "held for %s", current.Owner)
	}
	if !value.IsPositive() {
		return ErrNoValueSent
	}

	d := &Deposit{Owner: caller, Amount: value}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := m.vault.Receive(db, caller, value); err != nil {
		return errors.Wrap(err, "receive deposit")
	}
	if err := m.bucket.Save(db, d); err != nil {
		return errors.Wrap(err, "save deposit")
	}

	m.sink.Emit(ctx, Event{Kind: EventLocked, Owner: d.Owner, Amount: d.Amount})
	return nil
}

// Claim releases the deposit to caller. The deposit stays locked when the
// transfer fails.
func (m *Machine) Claim(ctx context.Context, db lockbox.KVStore, caller lockbox.Address, phrase string) (coin.Coin, error) {
	current, err := m.bucket.Current(db)
	if err != nil {
		return coin.Coin{}, err
	}
	if current == nil || !current.Owner.Equals(caller) {
		return coin.Coin{}, ErrNotOwner
	}
	if phrase != SecretPhrase {
		return coin.Coin{}, ErrWrongPhrase
	}

	amount := current.Amount
	if err := m.vault.Release(db, caller, amount); err != nil {
		return coin.Coin{}, errors.Wrapf(ErrTransferFailed, "release %s to %s: %s", amount, caller, err)
	}
	if err := m.bucket.Clear(db); err != nil {
		return coin.Coin{}, errors.Wrap(err, "clear deposit")
	}

	m.sink.Emit(ctx, Event{Kind: EventRedeemed, Owner: current.Owner, Amount: amount})
	return amount, nil
}
