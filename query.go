package goalchain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iov-one/goalchain/errors"
)

// Query modifiers follow the path after a question mark. "/escrows" looks
// up a single escrow by its key, "/escrows?prefix" lists all escrows whose
// key starts with the given bytes, for example all escrows of one owner.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries for one path. The modifier is one of the
// *QueryMod constants.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of one extension to a router.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths to their handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without any path registered.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register function with this router.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register binds a handler to the path. A path must start with a slash and
// cannot carry a modifier. Registering the same path twice panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "?") {
		panic(fmt.Sprintf("invalid query path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// Route splits a full query path like "/escrows?prefix" and returns the
// handler of the path together with the modifier.
func (r QueryRouter) Route(fullPath string) (QueryHandler, string, error) {
	path, mod := fullPath, ""
	if i := strings.IndexByte(fullPath, '?'); i >= 0 {
		path, mod = fullPath[:i], fullPath[i+1:]
	}
	h := r.routes[path]
	if h == nil {
		return nil, "", errors.Wrapf(errors.ErrNotFound,
			"unexpected query path %q, known paths are %s", fullPath, strings.Join(r.Paths(), ", "))
	}
	return h, mod, nil
}

// Paths returns all registered paths in alphabetical order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
