package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]goalchain.Handler
}

var _ goalchain.Registry = (*Router)(nil)
var _ goalchain.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]goalchain.Handler, 10),
	}
}

// Handle adds a new Handler for the path of the given message.
// It panics if the path is not valid or a handler for it was
// registered already.
func (r *Router) Handle(msg goalchain.Msg, h goalchain.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path.
func (r *Router) handler(m goalchain.Msg) (goalchain.Handler, error) {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx goalchain.Context, store goalchain.KVStore, tx goalchain.Tx) (*goalchain.CheckResult, error) {
	msg, err := goalchain.ExtractMsg(tx)
	if err != nil {
		return nil, err
	}
	h, err := r.handler(msg)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx goalchain.Context, store goalchain.KVStore, tx goalchain.Tx) (*goalchain.DeliverResult, error) {
	msg, err := goalchain.ExtractMsg(tx)
	if err != nil {
		return nil, err
	}
	h, err := r.handler(msg)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}
