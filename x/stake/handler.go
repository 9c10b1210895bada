package stake

import (
	"strconv"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/x"
	"github.com/iov-one/goalchain/x/cash"
)

const (
	// pay escrow storage up-front
	stakeTaskCost    int64 = 300
	completeTaskCost int64 = 0
)

// Every delivered stake transaction is tagged with the owner and the task
// of its escrow, so the history of an owner or task can be searched.
const (
	OwnerTag = "stake.owner"
	TaskTag  = "stake.task"
)

func escrowResult(data []byte, e *Escrow) *goalchain.DeliverResult {
	res := &goalchain.DeliverResult{Data: data}
	res.Tag(OwnerTag, []byte(e.Owner.String()))
	res.Tag(TaskTag, []byte(strconv.FormatUint(e.TaskID, 10)))
	return res
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r goalchain.Registry, auth x.Authenticator, bank cash.Controller) {
	bucket := NewBucket()
	r.Handle(&StakeTaskMsg{}, StakeTaskHandler{auth: auth, bucket: bucket, bank: bank})
	r.Handle(&CompleteTaskMsg{}, CompleteTaskHandler{auth: auth, bucket: bucket, bank: bank})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr goalchain.QueryRouter) {
	NewBucket().Register(BucketName, qr)
}

//---- stake

// StakeTaskHandler creates an escrow and funds it from the owner account.
type StakeTaskHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.Controller
}

var _ goalchain.Handler = StakeTaskHandler{}

// Check validates the message and ensures the owner can pay for it. Nothing
// is written.
func (h StakeTaskHandler) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	escrow, total, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if !total.IsZero() {
		balance, err := h.bank.Balance(db, escrow.Owner)
		if err != nil {
			return nil, err
		}
		if !balance.Contains(total) {
			return nil, errors.Wrapf(ErrInsufficientFunds, "%s cannot pay %s", escrow.Owner, total)
		}
	}
	return &goalchain.CheckResult{GasAllocated: stakeTaskCost}, nil
}

// Deliver moves the stake and the storage deposit into the escrow custody
// and stores the escrow. The escrow key is returned as data.
func (h StakeTaskHandler) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	escrow, total, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key := EscrowKey(escrow.Owner, escrow.TaskID)
	if !total.IsZero() {
		if err := h.bank.MoveCoins(db, escrow.Owner, CustodyAddress(key), total); err != nil {
			return nil, errors.Wrap(err, "fund escrow")
		}
	}
	if _, err := h.bucket.Create(db, escrow); err != nil {
		return nil, err
	}

	goalchain.GetLogger(ctx).Info("escrow created",
		"owner", escrow.Owner, "task", escrow.TaskID, "deadline", int64(escrow.Deadline), "staked", total)
	return escrowResult(key, escrow), nil
}

// validate does all common pre-processing between Check and Deliver. It
// returns the escrow to create and the total amount the owner pays for it.
func (h StakeTaskHandler) validate(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*Escrow, coin.Coin, error) {
	var msg StakeTaskMsg
	if err := goalchain.LoadMsg(tx, &msg); err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "load msg")
	}

	owner := msg.Owner
	if owner == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, coin.Coin{}, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		owner = signer.Address()
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, coin.Coin{}, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	key := EscrowKey(owner, msg.TaskID)
	if has, err := h.bucket.Has(db, key); err != nil {
		return nil, coin.Coin{}, err
	} else if has {
		return nil, coin.Coin{}, errors.Wrapf(ErrDuplicateEscrow, "task %d", msg.TaskID)
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	deposit, err := StorageDeposit(*conf)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	total, err := coin.NewCoin(msg.StakeAmount, conf.Ticker).Add(coin.NewCoin(deposit, conf.Ticker))
	if err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "stake with deposit")
	}

	escrow := &Escrow{
		Owner:        owner,
		TaskID:       msg.TaskID,
		Deadline:     msg.Deadline,
		Completed:    false,
		StakedAmount: msg.StakeAmount,
	}
	return escrow, total, nil
}

//---- complete

// CompleteTaskHandler completes an escrow that did not pass its deadline
// and returns everything it holds to the owner.
type CompleteTaskHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.Controller
}

var _ goalchain.Handler = CompleteTaskHandler{}

// Check just verifies the escrow can be completed and returns
// the cost of executing it
func (h CompleteTaskHandler) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &goalchain.CheckResult{GasAllocated: completeTaskCost}, nil
}

// Deliver marks the escrow completed, releases all of its custody to the
// owner and deletes it. The final record is returned as data.
func (h CompleteTaskHandler) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	key, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	escrow.Completed = true
	released, err := cash.MoveAll(db, h.bank, CustodyAddress(key), escrow.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "release escrow")
	}
	if err := h.bucket.Delete(db, key); err != nil {
		return nil, err
	}
	record, err := escrow.Marshal()
	if err != nil {
		return nil, err
	}

	goalchain.GetLogger(ctx).Info("escrow completed",
		"owner", escrow.Owner, "task", escrow.TaskID, "released", released)
	return escrowResult(record, escrow), nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CompleteTaskHandler) validate(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) ([]byte, *Escrow, error) {
	var msg CompleteTaskMsg
	if err := goalchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	key := msg.Key()
	escrow, err := h.bucket.GetEscrow(db, key)
	if err != nil {
		return nil, nil, err
	}
	if escrow == nil {
		return nil, nil, errors.Wrapf(ErrNotFound, "escrow for task %d", msg.TaskID)
	}

	if !h.auth.HasAddress(ctx, escrow.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "owner signature missing")
	}

	now, err := goalchain.BlockUnixTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	if !escrow.IsReleasable(now) {
		return nil, nil, errors.Wrapf(ErrDeadlinePassed, "deadline %s", escrow.Deadline)
	}
	return key, escrow, nil
}
