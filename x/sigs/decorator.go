// Package sigs verifies the ed25519 signatures of a transaction and keeps
// the nonce of every key against replays. Handlers learn who signed
// through Authenticate.
package sigs

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// signatureVerifyCost is the gas charged in CheckTx per valid signature.
const signatureVerifyCost = 500

// RegisterQuery exposes the accounts under "/auth".
func RegisterQuery(qr goalchain.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a SignedTx and puts the signers in
// the context. A transaction that is not a SignedTx passes with no
// signers.
type Decorator struct {
	allowMissingSigs bool
}

var _ goalchain.Decorator = Decorator{}

// NewDecorator requires at least one signature on every SignedTx.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy that lets a SignedTx without signatures
// through.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (*goalchain.CheckResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(withSigners(ctx, signers), db, tx)
	if err != nil {
		return nil, err
	}
	res.GasPayment += int64(len(signers)) * signatureVerifyCost
	return res, nil
}

func (d Decorator) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (*goalchain.DeliverResult, error) {
	signers, err := d.signers(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(withSigners(ctx, signers), db, tx)
}

func (d Decorator) signers(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) ([]goalchain.Condition, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return nil, nil
	}
	signers, err := VerifyTxSignatures(db, stx, goalchain.GetChainID(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	logger := goalchain.GetLogger(ctx)
	for _, s := range signers {
		logger.Debug("verified signature", "signer", s.Address())
	}
	return signers, nil
}
