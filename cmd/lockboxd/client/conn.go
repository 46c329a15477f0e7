package client

import (
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// Conn is the part of the tendermint RPC client this package needs. Both
// the HTTP and the local (in process) tendermint clients implement it.
type Conn interface {
	Genesis() (*ctypes.ResultGenesis, error)
	ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error)
	BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error)
}

var _ Conn = (*rpcclient.HTTP)(nil)

// NewHTTPConnection takes a URL and sends all requests to the remote node
func NewHTTPConnection(remote string) Conn {
	return rpcclient.NewHTTP(remote, "/websocket")
}
