package escrow

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/orm"
)

// NewQueryHandler returns a handler that ignores the query data and
// returns the current deposit. There is no result when the escrow is empty.
func NewQueryHandler(b Bucket) lockbox.QueryHandler {
	return depositQuery{h: orm.NewQueryHandler(b)}
}

type depositQuery struct {
	h lockbox.QueryHandler
}

func (q depositQuery) Query(db lockbox.ReadOnlyKVStore, _ []byte) ([]lockbox.Model, error) {
	return q.h.Query(db, depositKey)
}
