/*
Package orm provides a thin object mapping layer on top of the key value
store. Each bucket owns a key prefix and serializes a single model type.
*/
package orm

import (
	"reflect"
	"regexp"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	lockbox.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db lockbox.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists. It
	// returns ErrNotFound otherwise.
	Has(db lockbox.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database.
	Put(db lockbox.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db lockbox.KVStore, key []byte) error

	// DBKey returns the full database key, bucket prefix included.
	DBKey(key []byte) []byte
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// NewModelBucket returns a ModelBucket instance that stores models of the
// same type as given example under the bucket name prefix.
//
// This function panics if the name is not a valid bucket name.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic("illegal bucket: " + name)
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  reflect.TypeOf(example),
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db lockbox.ReadOnlyKVStore, key []byte, dest Model) error {
	if t := reflect.TypeOf(dest); t != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", mb.model, t)
	}
	raw, err := db.Get(mb.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot decode %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db lockbox.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db lockbox.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %s in %s bucket", t, mb.model)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if len(raw) == 0 {
		return errors.Wrap(errors.ErrModel, "empty serialization")
	}
	if err := db.Set(mb.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db lockbox.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return db.Delete(mb.DBKey(key))
}

// NewQueryHandler returns a handler that loads a single model from given
// bucket. Query data is the model key.
func NewQueryHandler(b ModelBucket) lockbox.QueryHandler {
	return &queryHandler{b: b}
}

type queryHandler struct {
	b ModelBucket
}

func (q *queryHandler) Query(db lockbox.ReadOnlyKVStore, key []byte) ([]lockbox.Model, error) {
	dbkey := q.b.DBKey(key)
	raw, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []lockbox.Model{lockbox.Pair(dbkey, raw)}, nil
}
