package utils

import (
	"context"

	"github.com/iov-one/lockbox"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key under which the message path is indexed.
const ActionKey = "action"

// ActionTagger tags every delivered transaction with the path of its
// message, so that clients can subscribe to, for example, all escrow
// deposits with "action='escrow/deposit'".
type ActionTagger struct{}

var _ lockbox.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Checker) (*lockbox.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends the action tag after all tags set by the handler. A
// transaction without a readable message is rejected before reaching the
// handler and failed transactions are not tagged.
func (ActionTagger) Deliver(ctx context.Context, db lockbox.KVStore, tx lockbox.Tx, next lockbox.Deliverer) (*lockbox.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{Key: []byte(ActionKey), Value: []byte(msg.Path())})
	return res, nil
}
