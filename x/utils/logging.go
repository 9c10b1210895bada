package utils

import (
	"time"

	"github.com/iov-one/goalchain"
)

// Logging writes one entry per transaction to the context logger, with
// the time it took in microseconds. Failures are logged as errors,
// deliveries as info and checks as debug. The message is the result log.
type Logging struct{}

var _ goalchain.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (*goalchain.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	l := txLog{ctx: ctx, start: start, err: err}
	if err == nil {
		l.msg = res.Log
	}
	l.write(false)
	return res, err
}

func (Logging) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (*goalchain.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	l := txLog{ctx: ctx, start: start, err: err}
	if err == nil {
		l.msg = res.Log
	}
	l.write(true)
	return res, err
}

type txLog struct {
	ctx   goalchain.Context
	start time.Time
	msg   string
	err   error
}

// write logs even an empty message, the duration is what matters.
func (l txLog) write(delivered bool) {
	logger := goalchain.GetLogger(l.ctx).With("duration", time.Since(l.start)/time.Microsecond)
	switch {
	case l.err != nil:
		logger.Error(l.msg, "err", l.err)
	case delivered:
		logger.Info(l.msg)
	default:
		logger.Debug(l.msg)
	}
}
