package lockbox

import (
	"github.com/iov-one/lockbox/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is the outcome of a successful transaction check.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum units of work the transaction may
	// perform when delivered.
	GasAllocated int64
	// GasPayment is the work already paid for by the decorators, for
	// example signature verification.
	GasPayment int64
}

// NewCheck returns a check result that allocates given gas.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

// DeliverResult is the outcome of a successfully delivered transaction.
// Failures are always returned as errors.
type DeliverResult struct {
	Data []byte
	// Log is a short, human readable summary, for example "locked 40 IOV".
	Log string
	// Tags are indexed by tendermint and allow to search the
	// transaction history.
	Tags    []common.KVPair
	GasUsed int64
}

// CheckOrError converts the result of a check into an ABCI response. A non
// nil error always takes precedence over the result.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil || res == nil {
		code, log := abciFailure("check", err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	return abci.ResponseCheckTx{
		Data:      res.Data,
		Log:       res.Log,
		GasWanted: res.GasAllocated,
	}
}

// DeliverOrError converts the result of a delivery into an ABCI response. A
// non nil error always takes precedence over the result.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil || res == nil {
		code, log := abciFailure("deliver", err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	return abci.ResponseDeliverTx{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}
}

func abciFailure(step string, err error, debug bool) (uint32, string) {
	if err == nil {
		err = errors.Wrap(errors.ErrState, "no result")
	}
	code, log := errors.ABCIInfo(err, debug)
	return code, "cannot " + step + " tx: " + log
}
