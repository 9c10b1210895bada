package cash

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/x"
)

// RegisterRoutes binds the send handler.
func RegisterRoutes(r goalchain.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// RegisterQuery exposes the wallets under "/wallets".
func RegisterQuery(qr goalchain.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler pays an amount from the wallet of a signer to any address.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ goalchain.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

// Check validates the message and the signature. The balance is only
// checked on delivery.
func (h SendHandler) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	if _, err := h.load(ctx, tx); err != nil {
		return nil, err
	}
	return &goalchain.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h SendHandler) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	msg, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "send")
	}
	return &goalchain.DeliverResult{}, nil
}

// load returns the validated message once the owner of the source wallet
// is known to have signed it.
func (h SendHandler) load(ctx goalchain.Context, tx goalchain.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := goalchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s did not sign", msg.Source)
	}
	return &msg, nil
}
