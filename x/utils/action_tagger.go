package utils

import (
	"github.com/iov-one/goalchain"
)

// ActionKey is the tag holding the route of a delivered message.
const ActionKey = "action"

// ActionTagger tags each successful DeliverTx with the path of its message,
// so clients can search for all "stake/complete_task" transactions.
type ActionTagger struct{}

var _ goalchain.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (*goalchain.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (*goalchain.DeliverResult, error) {
	msg, err := goalchain.ExtractMsg(tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tag(ActionKey, []byte(msg.Path()))
	return res, nil
}
