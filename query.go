package lockbox

import (
	"fmt"
)

// Model is a single key value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a model of given key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers ABCI queries for a single path. Data is the query
// argument, usually the key to load. No results is not an error.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of an extension.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches ABCI queries by path, for example "/escrow".
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls all given registers.
func (r QueryRouter) RegisterAll(regs ...QueryRegister) {
	for _, reg := range regs {
		reg(r)
	}
}

// Register assigns a handler to given path. It panics if the path is already
// taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler of given path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
