package client

import (
	"encoding/json"
	"sync"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// LocalConn drives an application in process, without consensus. Every
// broadcast transaction that passes CheckTx is delivered in a block of its
// own and committed before the call returns.
type LocalConn struct {
	mu      sync.Mutex
	app     abci.Application
	genesis *tmtypes.GenesisDoc
	height  int64
}

var _ Conn = (*LocalConn)(nil)

// NewLocalConn initializes the application with given chain id and state.
func NewLocalConn(app abci.Application, chainID string, appState json.RawMessage) *LocalConn {
	genesis := &tmtypes.GenesisDoc{
		GenesisTime: time.Now().UTC(),
		ChainID:     chainID,
		AppState:    appState,
	}
	app.InitChain(abci.RequestInitChain{
		Time:          genesis.GenesisTime,
		ChainId:       chainID,
		AppStateBytes: appState,
	})
	app.Commit()
	return &LocalConn{app: app, genesis: genesis}
}

// Genesis returns the document the application was initialized with.
func (c *LocalConn) Genesis() (*ctypes.ResultGenesis, error) {
	return &ctypes.ResultGenesis{Genesis: c.genesis}, nil
}

// ABCIQuery queries the last committed state.
func (c *LocalConn) ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	return &ctypes.ResultABCIQuery{Response: res}, nil
}

// BroadcastTxCommit checks the transaction and, if accepted, runs a block
// containing it.
func (c *LocalConn) BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := &ctypes.ResultBroadcastTxCommit{
		CheckTx: c.app.CheckTx(tx),
		Hash:    tx.Hash(),
	}
	if res.CheckTx.IsErr() {
		return res, nil
	}

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: c.genesis.ChainID,
			Height:  c.height,
			Time:    time.Now().UTC(),
		},
	})
	res.DeliverTx = c.app.DeliverTx(tx)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	res.Height = c.height
	return res, nil
}
