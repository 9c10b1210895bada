package weavetest

import "github.com/iov-one/goalchain"

// calls counts the Check and Deliver calls of a mock.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Handler returns a copy of CheckResult and DeliverResult, or CheckErr and
// DeliverErr when set.
type Handler struct {
	calls
	CheckResult   goalchain.CheckResult
	CheckErr      error
	DeliverResult goalchain.DeliverResult
	DeliverErr    error
}

var _ goalchain.Handler = (*Handler)(nil)

func (h *Handler) Check(goalchain.Context, goalchain.KVStore, goalchain.Tx) (*goalchain.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(goalchain.Context, goalchain.KVStore, goalchain.Tx) (*goalchain.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator calls the next handler unless CheckErr or DeliverErr is set,
// which is returned instead. Failed calls are counted too.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

var _ goalchain.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Checker) (*goalchain.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx, next goalchain.Deliverer) (*goalchain.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate runs h behind d.
func Decorate(h goalchain.Handler, d goalchain.Decorator) goalchain.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   goalchain.Handler
	decorator goalchain.Decorator
}

func (d decorated) Check(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx goalchain.Context, db goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}

// WriteHandler sets Key to Value and then fails with Err, if set. It shows
// whether a failed transaction left its writes behind.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ goalchain.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(_ goalchain.Context, db goalchain.KVStore, _ goalchain.Tx) (*goalchain.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &goalchain.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(_ goalchain.Context, db goalchain.KVStore, _ goalchain.Tx) (*goalchain.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &goalchain.DeliverResult{}, h.Err
}
