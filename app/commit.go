package app

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// CommitStore wraps a CommitKVStore with two caches. The deliver cache
// collects the changes of the current block and is written on Commit. The
// check cache is used to validate mempool transactions and is dropped on
// Commit.
type CommitStore struct {
	committed lockbox.CommitKVStore
	deliver   lockbox.KVCacheWrap
	check     lockbox.KVCacheWrap
}

// NewCommitStore loads the latest version of store.
func NewCommitStore(store lockbox.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (lockbox.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists the deliver cache and starts a new block.
func (cs *CommitStore) Commit() (lockbox.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return lockbox.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() lockbox.CacheableKVStore {
	return cs.check
}

func (cs *CommitStore) DeliverStore() lockbox.CacheableKVStore {
	return cs.deliver
}

// Committed returns a view of the last committed state, used by queries.
func (cs *CommitStore) Committed() lockbox.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}

var chainIDKey = []byte("_lb:chainID")

func loadChainID(db lockbox.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID can be called only once. The chain id must not change after
// genesis.
func saveChainID(db lockbox.KVStore, chainID string) error {
	if !lockbox.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case ok:
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	return errors.Wrap(db.Set(chainIDKey, []byte(chainID)), "save chain id")
}
