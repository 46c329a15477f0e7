package store

// emptyStore never holds any data. It is the bottom layer of a MemStore.
type emptyStore struct{}

var _ KVStore = emptyStore{}

func (emptyStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (emptyStore) Has(key []byte) (bool, error)   { return false, nil }
func (emptyStore) Set(key, value []byte) error    { return nil }
func (emptyStore) Delete(key []byte) error        { return nil }

func (e emptyStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// operation is a single change recorded by a batch. Value is ignored for
// deletes.
type operation struct {
	key     []byte
	value   []byte
	deleted bool
}

func (o operation) apply(out SetDeleter) error {
	if o.deleted {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch records operations and applies them one by one when
// written. A failure leaves the output partially updated, so it must only be
// used in front of in memory stores or stores that are themselves atomic.
type NonAtomicBatch struct {
	out SetDeleter
	ops []operation
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch that writes into given store.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, operation{key: key, value: value})
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, operation{key: key, deleted: true})
	return nil
}

// Write applies all recorded operations in order and resets the batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Len returns the number of operations waiting to be written.
func (b *NonAtomicBatch) Len() int {
	return len(b.ops)
}
