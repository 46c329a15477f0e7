package escrow

import (
	"context"
	"fmt"
	"strings"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/tendermint/tendermint/libs/common"
)

// EventKind tells what happened to the escrow.
type EventKind uint8

const (
	// EventLocked is emitted when a deposit is accepted.
	EventLocked EventKind = iota + 1
	// EventRedeemed is emitted when a deposit is claimed by its owner.
	EventRedeemed
)

func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "locked"
	case EventRedeemed:
		return "redeemed"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a notification about an escrow state change.
type Event struct {
	Kind   EventKind
	Owner  lockbox.Address
	Amount coin.Coin
}

// EventSink receives escrow events. Emit must not fail.
type EventSink interface {
	Emit(context.Context, Event)
}

// DiscardSink drops all events.
type DiscardSink struct{}

func (DiscardSink) Emit(context.Context, Event) {}

// LogSink writes events to the logger carried by the context.
type LogSink struct{}

func (LogSink) Emit(ctx context.Context, e Event) {
	lockbox.GetLogger(ctx).Info("escrow event",
		"kind", e.Kind.String(),
		"owner", e.Owner.String(),
		"amount", e.Amount.String())
}

// MultiSink passes each event to all sinks, in order.
type MultiSink []EventSink

// NewMultiSink groups given sinks. Nil sinks are skipped.
func NewMultiSink(sinks ...EventSink) MultiSink {
	ms := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			ms = append(ms, s)
		}
	}
	return ms
}

func (ms MultiSink) Emit(ctx context.Context, e Event) {
	for _, s := range ms {
		s.Emit(ctx, e)
	}
}

const (
	// TagOwner is the tag key used to index events by the deposit owner.
	TagOwner = "escrow.owner"
	// TagEvent is the tag key used to index events by their kind.
	TagEvent = "escrow.event"
)

// TagCollector keeps events emitted during a single transaction so they can
// be returned with the result.
type TagCollector struct {
	events []Event
}

func (c *TagCollector) Emit(_ context.Context, e Event) {
	c.events = append(c.events, e)
}

// Events returns all collected events.
func (c *TagCollector) Events() []Event {
	return c.events
}

// Tags returns the index tags of collected events. Amount is not indexed.
func (c *TagCollector) Tags() []common.KVPair {
	var tags []common.KVPair
	for _, e := range c.events {
		tags = append(tags,
			common.KVPair{Key: []byte(TagEvent), Value: []byte(e.Kind.String())},
			common.KVPair{Key: []byte(TagOwner), Value: []byte(e.Owner.String())},
		)
	}
	return tags
}

// Log returns a human readable description of collected events.
func (c *TagCollector) Log() string {
	lines := make([]string, len(c.events))
	for i, e := range c.events {
		lines[i] = fmt.Sprintf("%s %s", e.Kind, e.Amount)
	}
	return strings.Join(lines, "\n")
}
