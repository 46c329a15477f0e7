package app

import (
	"context"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/lockboxtest"
	"github.com/iov-one/lockbox/store"
	"github.com/iov-one/lockbox/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// genesisWriter stores the "greeting" genesis option under the "greeting" key.
type genesisWriter struct{}

func (genesisWriter) FromGenesis(opts lockbox.Options, db lockbox.KVStore) error {
	var greeting string
	if err := opts.ReadOptions("greeting", &greeting); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if greeting == "" {
		return nil
	}
	return db.Set([]byte("greeting"), []byte(greeting))
}

// rawQuery returns the value stored under the query data.
type rawQuery struct{}

func (rawQuery) Query(db lockbox.ReadOnlyKVStore, key []byte) ([]lockbox.Model, error) {
	v, err := db.Get(key)
	if err != nil || v == nil {
		return nil, err
	}
	return []lockbox.Model{lockbox.Pair(key, v)}, nil
}

func newTestStoreApp(t *testing.T, kv lockbox.CommitKVStore) *StoreApp {
	t.Helper()
	qr := lockbox.NewQueryRouter()
	qr.Register("/raw", rawQuery{})
	s, err := NewStoreApp("test-app", kv, qr, context.Background())
	require.NoError(t, err)
	return s.WithInit(genesisWriter{})
}

func TestStoreAppLifecycle(t *testing.T) {
	kv := iavl.MockCommitStore()
	s := newTestStoreApp(t, kv)

	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, "test-app", info.Data)
	assert.Equal(t, int64(0), info.LastBlockHeight)

	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"greeting": "hello"}`),
	})
	assert.Equal(t, "test-chain-1", s.GetChainID())
	assert.Equal(t, "test-chain-1", lockbox.GetChainID(s.BlockContext()))

	// Nothing is visible before the commit.
	res := s.Query(abci.RequestQuery{Path: "/raw", Data: []byte("greeting")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var empty ResultSet
	require.NoError(t, empty.Unmarshal(res.Value))
	assert.Empty(t, empty.Results)

	s.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	s.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := s.Commit()
	assert.NotEmpty(t, commit.Data)

	res = s.Query(abci.RequestQuery{Path: "/raw", Data: []byte("greeting")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Equal(t, int64(1), res.Height)
	var m rawModel
	require.NoError(t, UnmarshalOneResult(res.Value, &m))
	assert.Equal(t, []byte("hello"), m.raw)

	info = s.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)

	// Genesis can be loaded only once.
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			ChainId:       "test-chain-1",
			AppStateBytes: []byte(`{}`),
		})
	})

	res = s.Query(abci.RequestQuery{Path: "/unknown"})
	assert.NotEqual(t, uint32(0), res.Code)
}

func TestStoreAppRestart(t *testing.T) {
	kv := iavl.MockCommitStore()
	s := newTestStoreApp(t, kv)
	s.InitChain(abci.RequestInitChain{
		ChainId:       "restart-chain",
		AppStateBytes: []byte(`{"greeting": "hi"}`),
	})
	s.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	hash := s.Commit().Data

	// A new app over the same store picks up the chain id and height.
	restarted := newTestStoreApp(t, kv)
	assert.Equal(t, "restart-chain", restarted.GetChainID())
	info := restarted.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, hash, info.LastBlockAppHash)
}

func TestInitChainErrors(t *testing.T) {
	cases := map[string]abci.RequestInitChain{
		"missing app state": {ChainId: "test-chain-1"},
		"invalid app state": {ChainId: "test-chain-1", AppStateBytes: []byte(`[1, 2]`)},
		"invalid chain id":  {ChainId: "a", AppStateBytes: []byte(`{}`)},
	}
	for testName, req := range cases {
		t.Run(testName, func(t *testing.T) {
			s := newTestStoreApp(t, iavl.MockCommitStore())
			assert.Panics(t, func() { s.InitChain(req) })
		})
	}
}

func TestCommitStore(t *testing.T) {
	cs, err := NewCommitStore(iavl.MockCommitStore())
	require.NoError(t, err)

	require.NoError(t, cs.DeliverStore().Set([]byte("k"), []byte("deliver")))
	require.NoError(t, cs.CheckStore().Set([]byte("k"), []byte("check")))

	v, err := cs.Committed().Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, v)

	id, err := cs.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	// Deliver state is committed, check state is dropped.
	v, err = cs.Committed().Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("deliver"), v)
	v, err = cs.CheckStore().Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("deliver"), v)
}

func TestChainID(t *testing.T) {
	db := store.MemStore()
	id, err := loadChainID(db)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	assert.True(t, errors.ErrInput.Is(saveChainID(db, "x")))
	require.NoError(t, saveChainID(db, "my-chain"))
	assert.True(t, errors.ErrUnauthorized.Is(saveChainID(db, "other-chain")))

	id, err = loadChainID(db)
	require.NoError(t, err)
	assert.Equal(t, "my-chain", id)
}

func TestBaseApp(t *testing.T) {
	kv := iavl.MockCommitStore()
	s := newTestStoreApp(t, kv)
	s.InitChain(abci.RequestInitChain{
		ChainId:       "base-chain",
		AppStateBytes: []byte(`{}`),
	})

	writeMsg := &lockboxtest.Msg{RoutePath: "test/write"}
	failMsg := &lockboxtest.Msg{RoutePath: "test/fail"}
	r := NewRouter()
	r.Handle(writeMsg, &lockboxtest.WriteHandler{Key: []byte("written"), Value: []byte("yes")})
	r.Handle(failMsg, &lockboxtest.Handler{
		CheckErr:   errors.ErrState,
		DeliverErr: errors.ErrState,
	})

	decoder := func(raw []byte) (lockbox.Tx, error) {
		switch string(raw) {
		case "write":
			return &lockboxtest.Tx{Msg: writeMsg}, nil
		case "fail":
			return &lockboxtest.Tx{Msg: failMsg}, nil
		case "panic":
			panic("cannot decode")
		default:
			return nil, errors.ErrType
		}
	}
	app := NewBaseApp(s, decoder, r, false)

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})

	chk := app.CheckTx([]byte("write"))
	assert.Equal(t, uint32(0), chk.Code, chk.Log)
	del := app.DeliverTx([]byte("write"))
	assert.Equal(t, uint32(0), del.Code, del.Log)

	code, _ := errors.ABCIInfo(errors.ErrState, false)
	assert.Equal(t, code, app.DeliverTx([]byte("fail")).Code)
	assert.Equal(t, code, app.CheckTx([]byte("fail")).Code)

	code, _ = errors.ABCIInfo(errors.ErrInput, false)
	assert.Equal(t, code, app.DeliverTx([]byte("garbage")).Code)

	code, _ = errors.ABCIInfo(errors.ErrPanic, false)
	assert.Equal(t, code, app.CheckTx([]byte("panic")).Code)

	app.Commit()
	v, err := kv.Get([]byte("written"))
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), v)
}
