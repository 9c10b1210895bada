package cash

import (
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
)

// Balancer is an interface to query the amount of coins held by an
// address.
type Balancer interface {
	// Balance returns the coins held by the address. An address that was
	// never funded has an empty balance.
	Balance(goalchain.ReadOnlyKVStore, goalchain.Address) (coin.Coins, error)
}

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins releases the amount from the source address and credits
	// it to the destination. Fails with ErrInsufficientAmount if the
	// source cannot cover it, without changing any state.
	MoveCoins(goalchain.KVStore, goalchain.Address, goalchain.Address, coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and cash.Decorator.
// BaseController should work plenty fine, but you can add other logic if
// so desired
type Controller interface {
	Balancer
	CoinMover
	// IssueCoins creates the coins out of thin air and credits them to
	// the given address.
	IssueCoins(goalchain.KVStore, goalchain.Address, coin.Coin) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by the address.
func (c BaseController) Balance(db goalchain.ReadOnlyKVStore, addr goalchain.Address) (coin.Coins, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load wallet")
	}
	if w == nil {
		return coin.Coins{}, nil
	}
	return w.Coins().Clone(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db goalchain.KVStore, src, dest goalchain.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount: %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot load sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrInsufficientAmount, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s cannot pay %s", src, amount)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot load recipient")
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := c.bucket.Save(db, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db goalchain.KVStore, dest goalchain.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// MoveAll moves the whole balance of src to dest, one currency at a time.
// It is a no-op for an empty account.
func MoveAll(db goalchain.KVStore, ctrl Controller, src, dest goalchain.Address) (coin.Coins, error) {
	balance, err := ctrl.Balance(db, src)
	if err != nil {
		return nil, err
	}
	for _, c := range balance {
		if err := ctrl.MoveCoins(db, src, dest, *c); err != nil {
			return nil, errors.Wrapf(err, "failed to move %q", c.String())
		}
	}
	return balance, nil
}
