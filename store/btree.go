package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree is the branching factor of every cache tree.
const btreeDegree = 2

// freeListSize is the number of nodes kept for reuse by all trees sharing a
// free list.
const freeListSize = btree.DefaultFreeListSize

// MemStore returns a store that keeps everything in memory. Nothing is ever
// persisted.
func MemStore() CacheableKVStore {
	var base emptyStore
	return NewBTreeCacheWrap(base, NewNonAtomicBatch(base), nil)
}

// BTreeCacheWrap keeps pending writes in a btree on top of a read only store.
// All writes are also recorded by the batch and reach the parent store only
// once Write is called.
type BTreeCacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over given store. The free list is
// optional and can be shared between nested caches.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(freeListSize)
	}
	return BTreeCacheWrap{
		tree:   btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap returns another cache layer whose writes land in this one.
func (c BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(c, c.NewBatch(), c.free)
}

// NewBatch returns a batch writing into this cache.
func (c BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes all pending operations to the parent store and empties the
// cache.
func (c BTreeCacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops all pending operations. Tree nodes are returned to the free
// list.
func (c BTreeCacheWrap) Discard() {
	for c.tree.DeleteMin() != nil {
	}
}

func (c BTreeCacheWrap) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c BTreeCacheWrap) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	item := c.tree.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}

// entry is a pending write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(other btree.Item) bool {
	return bytes.Compare(e.key, other.(entry).key) < 0
}
