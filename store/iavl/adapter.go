/*
Package iavl persists the application state in a versioned merkle tree, so
every commit produces the app hash reported to tendermint.
*/
package iavl

import (
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	db   dbm.DB
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with leveldb backing, writing to the
// named database inside of dir.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return newCommitStore(db), nil
}

// MockCommitStore creates a new in-memory store, for tests.
func MockCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
		db:   db,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap wraps a btree cache around the working tree. Writing the cache
// applies all pending changes to the tree, Commit saves them as a new
// version.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	adapter := treeAdapter{tree: s.tree}
	return store.NewBTreeCacheWrap(adapter, adapter.NewBatch(), nil)
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// treeAdapter exposes the working tree as a KVStore.
type treeAdapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeAdapter{}

func (a treeAdapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a treeAdapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a treeAdapter) Set(key, value []byte) error {
	if value == nil {
		return errors.Wrap(errors.ErrDatabase, "nil value")
	}
	a.tree.Set(key, value)
	return nil
}

func (a treeAdapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

func (a treeAdapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}
