package goalchain

import (
	"bytes"
	"fmt"

	"github.com/iov-one/goalchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is returned by a Handler for a transaction that was
// applied. A failed transaction is always reported with an error instead.
type DeliverResult struct {
	// Data is passed back to the client. Creating an escrow returns its
	// key, completing it returns the final record.
	Data []byte
	// Log is a human readable note about the execution.
	Log string
	// Tags are indexed by tendermint so the transaction history can be
	// searched by them, for example all stakes of one owner.
	Tags []common.KVPair
	// GasUsed is reported to tendermint as is.
	GasUsed int64
}

// Tag appends an indexed key value pair to the result.
func (d *DeliverResult) Tag(key string, value []byte) {
	d.Tags = append(d.Tags, common.KVPair{Key: []byte(key), Value: value})
}

// TagValue returns the value of the first tag with the given key, or nil
// if the result was not tagged with it.
func (d DeliverResult) TagValue(key string) []byte {
	k := []byte(key)
	for _, t := range d.Tags {
		if bytes.Equal(t.Key, k) {
			return t.Value
		}
	}
	return nil
}

// ToABCI converts the result into the tendermint response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// CheckResult is returned by a Handler for a transaction that may be
// included in a block.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum units of work this transaction may use.
	GasAllocated int64
	// GasPayment is the fee paid for this transaction. It is not reported
	// to tendermint.
	GasPayment int64
}

// ToABCI converts the result into the tendermint response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverOrError builds the DeliverTx response from the outcome of a
// Handler call.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	switch {
	case err != nil:
		return DeliverTxError(err, debug)
	case result == nil:
		return abci.ResponseDeliverTx{}
	default:
		return result.ToABCI()
	}
}

// CheckOrError builds the CheckTx response from the outcome of a Handler
// call.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	switch {
	case err != nil:
		return CheckTxError(err, debug)
	case result == nil:
		return abci.ResponseCheckTx{}
	default:
		return result.ToABCI()
	}
}

// DeliverTxError converts an error into a failed DeliverTx response. Only
// registered errors keep their message unless debug is set.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := failure("deliver", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

// CheckTxError converts an error into a failed CheckTx response. Only
// registered errors keep their message unless debug is set.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := failure("check", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

func failure(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, fmt.Sprintf("cannot %s tx: %s", phase, log)
}
