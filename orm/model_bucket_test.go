package orm

import (
	"testing"

	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/lockboxtest/assert"
	"github.com/iov-one/lockbox/store"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

type counter struct {
	Count int64
}

func (c *counter) Marshal() ([]byte, error)    { return cdc.MarshalBinaryBare(c) }
func (c *counter) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, c) }

func (c *counter) Validate() error {
	if c.Count <= 0 {
		return errors.Wrap(errors.ErrModel, "count must be positive")
	}
	return nil
}

type other struct {
	Name string
}

func (o *other) Marshal() ([]byte, error)    { return cdc.MarshalBinaryBare(o) }
func (o *other) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, o) }
func (o *other) Validate() error            { return nil }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}
	assert.Nil(t, b.Has(db, []byte("c1")))

	var c1 counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.IsErr(t, errors.ErrModel, b.Put(db, []byte("c1"), &counter{Count: 0}))
	assert.IsErr(t, errors.ErrType, b.Put(db, []byte("c1"), &other{Name: "x"}))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
}

func TestModelBucketWrongDestination(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: 2}))

	var o other
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("c1"), &o))
}

func TestModelBucketCorruptedData(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, db.Set(b.DBKey([]byte("c1")), []byte{0xff, 0xff, 0xff}))

	var c counter
	assert.IsErr(t, errors.ErrModel, b.One(db, []byte("c1"), &c))
}

func TestBucketNamespaces(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("first", &counter{})
	b := NewModelBucket("second", &counter{})

	assert.Nil(t, a.Put(db, []byte("key"), &counter{Count: 1}))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("key")))
	assert.Equal(t, []byte("first:key"), a.DBKey([]byte("key")))
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() {
		// An invalid bucket name must crash.
		NewModelBucket("l33t", &counter{})
	})
}

func TestQueryHandler(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: 5}))

	h := NewQueryHandler(b)

	res, err := h.Query(db, []byte("c1"))
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one result, got %d", len(res))
	}
	assert.Equal(t, []byte("cnts:c1"), res[0].Key)

	var c counter
	assert.Nil(t, c.Unmarshal(res[0].Value))
	assert.Equal(t, int64(5), c.Count)

	res, err = h.Query(db, []byte("missing"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))
}
