package coin

import (
	"sort"

	"github.com/iov-one/lockbox/errors"
)

// Coins is a set of amounts in different currencies. A normalized set is
// sorted by ticker, holds at most one coin per currency and no zero values.
// All methods expect a normalized set.
type Coins []*Coin

// CombineCoins returns a normalized set holding the sum of all given coins.
func CombineCoins(cs ...Coin) (Coins, error) {
	var (
		res = make(Coins, 0, len(cs))
		err error
	)
	for _, c := range cs {
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Clone returns a deep copy.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns the set increased by c. A currency whose sum is zero is
// removed. The receiver shares its backing array with the result and must
// not be used afterwards.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}

	i, found := cs.search(c.Ticker)
	if !found {
		cs = append(cs, nil)
		copy(cs[i+1:], cs[i:])
		cs[i] = &c
		return cs, nil
	}

	sum, err := cs[i].Add(c)
	if err != nil {
		return nil, err
	}
	if sum.IsZero() {
		return append(cs[:i], cs[i+1:]...), nil
	}
	cs[i] = &sum
	return cs, nil
}

// Subtract returns the set decreased by c. The result may hold negative
// amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine returns a new set holding the sum of both sets.
func (cs Coins) Combine(o Coins) (Coins, error) {
	var err error
	res := cs.Clone()
	for _, c := range o {
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if the set holds at least given amount.
func (cs Coins) Contains(c Coin) bool {
	i, found := cs.search(c.Ticker)
	return found && cs[i].IsGTE(c)
}

// Get returns the amount held in given currency. A zero coin is returned when
// the currency is not present.
func (cs Coins) Get(ticker string) Coin {
	if i, found := cs.search(ticker); found {
		return *cs[i]
	}
	return Coin{Ticker: ticker}
}

// search returns the position of the currency in the set, or the position
// where it should be inserted if missing.
func (cs Coins) search(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= ticker })
	return i, i < len(cs) && cs[i].Ticker == ticker
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true if the set is not empty and all amounts are
// positive.
func (cs Coins) IsPositive() bool {
	return !cs.IsEmpty() && cs.IsNonNegative()
}

// IsNonNegative returns true if no amount is negative or zero. An empty set
// is non negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate returns an error if any coin is invalid or the set is not
// normalized.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, "coin")
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coins")
		}
		if i > 0 && c.Ticker <= cs[i-1].Ticker {
			return errors.Wrap(errors.ErrState, "not sorted")
		}
	}
	return nil
}
