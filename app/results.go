package app

import (
	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/errors"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// ResultSet contains a list of keys or values returned by a query.
type ResultSet struct {
	Results [][]byte
}

func (r *ResultSet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(r)
}

// Unmarshal decodes the set. An empty set is serialized to no bytes.
func (r *ResultSet) Unmarshal(raw []byte) error {
	if len(raw) == 0 {
		*r = ResultSet{}
		return nil
	}
	return cdc.UnmarshalBinaryBare(raw, r)
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []lockbox.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []lockbox.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]lockbox.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrap(errors.ErrState, "mismatched result set size")
	}
	mods := make([]lockbox.Model, len(kref))
	for i := range mods {
		mods[i] = lockbox.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o.
// It returns ErrNotFound when the result set is empty.
func UnmarshalOneResult(raw []byte, o lockbox.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return o.Unmarshal(res.Results[0])
}
