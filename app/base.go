package app

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a StoreApp that also runs transactions: it decodes the bytes
// tendermint sends and passes the transaction to the handler stack.
type BaseApp struct {
	*StoreApp
	decoder goalchain.TxDecoder
	handler goalchain.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp builds the application. With debug set, error logs carry the
// full stack trace. Never enable it on a public network.
func NewBaseApp(store *StoreApp, decoder goalchain.TxDecoder, handler goalchain.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return goalchain.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(b.txContext(tx, "deliver_tx"), b.DeliverStore(), tx)
	return goalchain.DeliverOrError(res, err, b.debug)
}

func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return goalchain.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(b.txContext(tx, "check_tx"), b.CheckStore(), tx)
	return goalchain.CheckOrError(res, err, b.debug)
}

// txContext is the block context with a logger naming the call and the
// route of the message.
func (b BaseApp) txContext(tx goalchain.Tx, call string) goalchain.Context {
	return goalchain.WithLogInfo(b.BlockContext(), "call", call, "path", goalchain.GetPath(tx))
}

// decode turns a panic of the decoder into an ErrPanic, bytes coming from
// the network must never crash the node.
func (b BaseApp) decode(raw []byte) (tx goalchain.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
