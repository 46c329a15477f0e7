package client

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/app"
	lockboxd "github.com/iov-one/lockbox/cmd/lockboxd/app"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/crypto"
	"github.com/iov-one/lockbox/errors"
	"github.com/iov-one/lockbox/x/cash"
	"github.com/iov-one/lockbox/x/escrow"
	"github.com/iov-one/lockbox/x/sigs"
	pkerrors "github.com/pkg/errors"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// Client is a tendermint connection wrapped to provide
// simple access to the data structures used in lockboxd.
type Client struct {
	conn Conn
}

// NewClient wraps a Client around an existing
// tendermint client connection.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// ChainID returns the chain id declared in the genesis of the node.
func (c *Client) ChainID() (string, error) {
	gen, err := c.conn.Genesis()
	if err != nil {
		return "", pkerrors.Wrap(err, "genesis")
	}
	return gen.Genesis.ChainID, nil
}

// AbciResponse contains a query result:
// a (possibly empty) list of key-value pairs, and the height
// at which it queried
type AbciResponse struct {
	Models []lockbox.Model
	Height int64
}

// AbciQuery calls abci query on tendermint rpc,
// verifies if it is an error or empty, and if there is
// data pulls out the ResultSets from keys and values into
// a useful AbciResponse struct
func (c *Client) AbciQuery(path string, data []byte) (AbciResponse, error) {
	var out AbciResponse

	q, err := c.conn.ABCIQuery(path, data)
	if err != nil {
		return out, pkerrors.Wrapf(err, "query %s", path)
	}
	resp := q.Response
	if resp.IsErr() {
		return out, pkerrors.Errorf("query %s: (%d) %s", path, resp.Code, resp.Log)
	}
	out.Height = resp.Height

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return out, err
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return out, err
	}
	out.Models, err = app.JoinResults(&keys, &vals)
	return out, err
}

// Balance returns the coins held by given address.
func (c *Client) Balance(addr lockbox.Address) (coin.Coins, error) {
	if err := addr.Validate(); err != nil {
		return nil, pkerrors.WithMessage(err, "invalid address")
	}
	resp, err := c.AbciQuery("/wallets", addr)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	var set cash.Set
	if err := set.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, pkerrors.Wrap(err, "wallet")
	}
	return set.Coins, nil
}

// Deposit returns the value locked in the escrow, or nil if it is empty.
func (c *Client) Deposit() (*escrow.Deposit, error) {
	resp, err := c.AbciQuery("/escrow", nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	var d escrow.Deposit
	if err := d.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, pkerrors.Wrap(err, "deposit")
	}
	return &d, nil
}

// NextSequence returns the sequence the next transaction signed with
// given key must use.
func (c *Client) NextSequence(pubkey *crypto.PublicKey) (int64, error) {
	resp, err := c.AbciQuery("/auth", pubkey.Address())
	if err != nil {
		return 0, err
	}
	if len(resp.Models) == 0 {
		// new account starts at 0
		return 0, nil
	}
	var user sigs.UserData
	if err := user.Unmarshal(resp.Models[0].Value); err != nil {
		return 0, pkerrors.Wrap(err, "user data")
	}
	return user.Sequence, nil
}

// SignTx signs the transaction with given key, using the chain id and the
// next sequence of the signer as known by the node.
func (c *Client) SignTx(tx *lockboxd.Tx, key crypto.Signer) error {
	chainID, err := c.ChainID()
	if err != nil {
		return err
	}
	seq, err := c.NextSequence(key.PublicKey())
	if err != nil {
		return err
	}
	return SignTx(tx, key, chainID, seq)
}

// SignTx modifies the tx in-place, adding signatures
func SignTx(tx *lockboxd.Tx, key crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// BroadcastTxResponse is the result of submitting a transaction.
type BroadcastTxResponse struct {
	Error    error                           // not-nil if there was an error sending
	Response *ctypes.ResultBroadcastTxCommit // not-nil if we got response from node
}

// IsError returns the reason of a failure, or nil if the transaction was
// committed. Errors rejected by the application resolve to their registered
// root error.
func (b BroadcastTxResponse) IsError() error {
	if b.Error != nil {
		return b.Error
	}
	if res := b.Response.CheckTx; res.IsErr() {
		return pkerrors.Wrap(errors.ABCIError(res.Code, res.Log), "CheckTx")
	}
	if res := b.Response.DeliverTx; res.IsErr() {
		return pkerrors.Wrap(errors.ABCIError(res.Code, res.Log), "DeliverTx")
	}
	return nil
}

// Code returns the ABCI code of the failed step, or zero on success.
func (b BroadcastTxResponse) Code() uint32 {
	if b.Response == nil {
		return 0
	}
	if b.Response.CheckTx.IsErr() {
		return b.Response.CheckTx.Code
	}
	return b.Response.DeliverTx.Code
}

// Is returns true if the transaction was rejected with given error.
func (b BroadcastTxResponse) Is(want *errors.Error) bool {
	code, _ := errors.ABCIInfo(want, false)
	return b.Code() == code
}

// BroadcastTx serializes a signed transaction and writes it to the
// blockchain. It returns when the tx is committed to the blockchain.
func (c *Client) BroadcastTx(tx lockbox.Tx) BroadcastTxResponse {
	data, err := tx.Marshal()
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}
	res, err := c.conn.BroadcastTxCommit(data)
	return BroadcastTxResponse{Error: err, Response: res}
}
