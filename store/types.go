/*
Package store provides the caching layers between the handlers and the
committed state: a btree backed cache wrap, batches, and an in-memory store
for tests. Persistent stores live in subpackages.
*/
package store

import "github.com/iov-one/lockbox"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = lockbox.ReadOnlyKVStore
type SetDeleter = lockbox.SetDeleter
type KVStore = lockbox.KVStore
type Batch = lockbox.Batch
type CacheableKVStore = lockbox.CacheableKVStore
type KVCacheWrap = lockbox.KVCacheWrap
type CommitKVStore = lockbox.CommitKVStore
type CommitID = lockbox.CommitID
