package coin

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/lockbox/errors"
)

// IsCC returns true if given string is a valid currency code.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest accepted whole value, 10^15-1.
	MaxInt int64 = 999999999999999
	// MinInt is the lowest accepted whole value.
	MinInt = -MaxInt

	// FracUnit is the number of fractional units in one whole, 10^9.
	FracUnit int64 = 1000000000
	// MaxFrac is the highest fractional value.
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest fractional value.
	MinFrac = -MaxFrac

	fracDigits = 9
)

// Coin is an amount of a single currency, split into a whole part and
// fractional units of 10^-9. Both parts of a valid coin have the same sign.
type Coin struct {
	Whole      int64  `json:"whole,omitempty"`
	Fractional int64  `json:"fractional,omitempty"`
	Ticker     string `json:"ticker,omitempty"`
}

// NewCoin returns a coin of given value.
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// Add returns the sum of both coins. A zero coin without a ticker is a
// neutral element. ErrCurrency is returned for different tickers and
// ErrOverflow when the result is out of range.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case c.Ticker == "" && c.IsZero():
		return o, nil
	case o.Ticker == "" && o.IsZero():
		return c, nil
	case c.Ticker != o.Ticker:
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
	}
	return Coin{
		Whole:      c.Whole + o.Whole,
		Fractional: c.Fractional + o.Fractional,
		Ticker:     c.Ticker,
	}.normalize()
}

// Negative returns the coin of the opposite value.
func (c Coin) Negative() Coin {
	return Coin{Whole: -c.Whole, Fractional: -c.Fractional, Ticker: c.Ticker}
}

// Subtract returns the coin decreased by given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare returns 1 if c is greater than o, -1 if it is lower and 0 if both
// are equal. Tickers are ignored and both coins must be normalized.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Whole != o.Whole:
		return sign(c.Whole - o.Whole)
	default:
		return sign(c.Fractional - o.Fractional)
	}
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// Equals returns true if both value and ticker are the same.
func (c Coin) Equals(o Coin) bool {
	return c == o
}

// IsEmpty returns true for nil or a zero amount.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

func (c Coin) IsPositive() bool {
	return c.Compare(Coin{}) > 0
}

func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if c is of the same currency and at least as big as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.Ticker == o.Ticker && c.Compare(o) >= 0
}

// Clone returns an independent copy.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Validate checks the currency code and the value range. Negative values are
// valid.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return errors.ErrOverflow
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		return errors.Wrap(errors.ErrOverflow, "fractional")
	}
	if c.Whole != 0 && c.Fractional != 0 && (c.Whole > 0) != (c.Fractional > 0) {
		return errors.Wrap(errors.ErrState, "mismatched sign")
	}
	return nil
}

// normalize moves overflowing fractional units into the whole part and
// aligns the signs of both parts.
func (c Coin) normalize() (Coin, error) {
	c.Whole += c.Fractional / FracUnit
	c.Fractional %= FracUnit

	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole--
		c.Fractional += FracUnit
	} else if c.Whole < 0 && c.Fractional > 0 {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.ErrOverflow
	}
	return c, nil
}

// UnmarshalJSON accepts both the human readable string format and the object
// notation.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		return c.Set(human)
	}

	// An alias type does not inherit this method.
	type plain Coin
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = Coin(p)
	return nil
}

// String returns the human readable form, for example "1.5 IOV". It can be
// parsed back with ParseHumanFormat.
func (c Coin) String() string {
	if n, err := c.normalize(); err == nil {
		c = n
	}

	var b strings.Builder
	if c.Whole == 0 && c.Fractional < 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(c.Whole, 10))

	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		digits := strconv.FormatInt(f, 10)
		digits = strings.Repeat("0", fracDigits-len(digits)) + digits
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(digits, "0"))
	}

	if c.Ticker != "" {
		b.WriteByte(' ')
		b.WriteString(c.Ticker)
	}
	return b.String()
}

var humanCoinFormat = regexp.MustCompile(`^(\-?)\s*(\d+)(?:\.(\d+))?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parses the "<whole>[.<fractional>] <ticker>" notation.
func ParseHumanFormat(h string) (Coin, error) {
	m := humanCoinFormat.FindStringSubmatch(h)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", h)
	}
	negative, wholeDigits, fracDigitsRaw, ticker := m[1] == "-", m[2], m[3], m[4]

	whole, err := strconv.ParseInt(wholeDigits, 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid whole value: %s", err)
	}

	var frac int64
	if fracDigitsRaw != "" {
		if len(fracDigitsRaw) > fracDigits {
			return Coin{}, errors.Wrap(errors.ErrInput, "fractional value too precise")
		}
		// Integer parsing keeps the value exact.
		padded := fracDigitsRaw + strings.Repeat("0", fracDigits-len(fracDigitsRaw))
		if frac, err = strconv.ParseInt(padded, 10, 64); err != nil {
			return Coin{}, errors.Wrapf(errors.ErrInput, "invalid fractional value: %s", err)
		}
	}

	if negative {
		whole, frac = -whole, -frac
	}
	return Coin{Whole: whole, Fractional: frac, Ticker: ticker}, nil
}

// Set implements the flag.Value interface.
func (c *Coin) Set(raw string) error {
	val, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}
