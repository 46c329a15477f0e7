package lockbox

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/lockbox/crypto/bech32"
	"github.com/iov-one/lockbox/errors"
)

// AddressLength is the size of every address. It must not change once any
// address was stored.
var AddressLength = 20

// conditionFormat matches "<extension>/<type>/<data>". The data section is
// binary and may contain newlines.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition names who can authorize an action, for example the holder of an
// ed25519 key: "sigs/ed25519/<public key>".
type Condition []byte

// NewCondition returns the condition of given extension, type and data.
func NewCondition(ext, typ string, data []byte) Condition {
	return append([]byte(ext+"/"+typ+"/"), data...)
}

// Parse returns the extension, type and data sections. ErrInput is returned
// for a malformed condition.
func (c Condition) Parse() (string, string, []byte, error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

// Address returns the address that identifies this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(o Condition) bool {
	return bytes.Equal(c, o)
}

// String returns the extension and type as they are followed by the hex
// encoded data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

func (c Condition) Validate() error {
	_, _, _, err := c.Parse()
	return err
}

// deserialize reads the format produced by String.
func (c *Condition) deserialize(source string) error {
	if source == "" {
		*c = nil
		return nil
	}
	parts := strings.Split(source, "/")
	if len(parts) != 3 {
		return errors.ErrInput.New("invalid condition format")
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return errors.ErrInput.Newf("malformed condition data: %s", err)
	}
	*c = NewCondition(parts[0], parts[1], data)
	return nil
}

// Address is a digest of a condition. It identifies wallets, escrow owners
// and signers.
type Address []byte

// NewAddress returns the truncated sha256 digest of given data.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

// Validate returns ErrInput if the address has an invalid length.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.ErrInput.Newf("address: %v", a)
	}
	return nil
}

// String returns the upper case hex encoding.
func (a Address) String() string {
	if len(a) == 0 {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the bech32 encoding with given human readable part.
func (a Address) Bech32(hrp string) (string, error) {
	raw, err := bech32.Encode(hrp, a)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// MarshalJSON encodes the address as a hex string instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts any format understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	return a.Set(enc)
}

// Set implements the flag.Value interface.
func (a *Address) Set(enc string) error {
	val, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = val
	return nil
}

// ParseAddress decodes a human readable address. The encoding is declared by
// a "hex:", "bech32:" or "cond:" prefix. Without a prefix hex is assumed. An
// empty value is a nil address.
func ParseAddress(enc string) (Address, error) {
	format, value := "hex", enc
	if i := strings.Index(enc, ":"); i >= 0 {
		format, value = enc[:i], enc[i+1:]
	}
	if value == "" {
		return nil, nil
	}

	switch format {
	case "hex":
		raw, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decode hex: %s", err)
		}
		return raw, nil
	case "bech32":
		_, raw, err := bech32.Decode(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decode bech32: %s", err)
		}
		return raw, nil
	case "cond":
		var c Condition
		if err := c.deserialize(value); err != nil {
			return nil, err
		}
		return c.Address(), nil
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown format %q", format)
	}
}
