package goalchain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/goalchain/crypto/bech32"
	"github.com/iov-one/goalchain/errors"
)

// AddressLength is the size of every address: a full sha256 digest.
const AddressLength = sha256.Size

// conditionFormat matches "extension/type/data". The (?s) flag lets the
// data contain any byte, including a newline.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition names who may authorize an action, for example the owner of
// a public key. Its bytes are "extension/type/data" where data is binary.
type Condition []byte

// NewCondition builds a condition from its three parts.
func NewCondition(ext, typ string, data []byte) Condition {
	c := make(Condition, 0, len(ext)+len(typ)+len(data)+2)
	c = append(c, ext...)
	c = append(c, '/')
	c = append(c, typ...)
	c = append(c, '/')
	return append(c, data...)
}

// Parse splits a condition into its extension, type and data.
func (c Condition) Parse() (ext, typ string, data []byte, err error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

func (c Condition) Validate() error {
	_, _, _, err := c.Parse()
	return err
}

// Address is the identity of whoever satisfies this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(other Condition) bool {
	return bytes.Equal(c, other)
}

// String prints the data hex encoded, as "sigs/ed25519/AB01...".
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// MarshalJSON uses the String form. A nil condition is an empty string.
func (c Condition) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal("")
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	cond, err := parseCondition(s)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

// parseCondition reads the String form back. An empty string is a nil
// condition.
func parseCondition(s string) (Condition, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, errors.Wrapf(errors.ErrInput, "condition %q is not ext/type/data", s)
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "condition data: %s", err)
	}
	return NewCondition(parts[0], parts[1], data), nil
}

// Address is the sha256 digest of a condition. Escrows and wallets are
// keyed by it.
type Address []byte

// NewAddress hashes data, usually a condition. A nil input gives a nil
// address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return sum[:]
}

func (a Address) Equals(other Address) bool {
	return bytes.Equal(a, other)
}

// Clone returns a copy that shares no memory with a.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

func (a Address) Validate() error {
	switch len(a) {
	case 0:
		return errors.ErrEmpty
	case AddressLength:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "address of %d bytes", len(a))
	}
}

// String is the upper case hex form, "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 encodes the address under the given human readable part.
func (a Address) Bech32(hrp string) (string, error) {
	return bech32.Encode(hrp, a)
}

// MarshalJSON writes upper case hex instead of the base64 default for
// byte slices.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts anything ParseAddress does.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress reads an address written as plain hex or with one of the
// prefixes "hex:", "cond:" (a condition in its String form) or "bech32:".
// An empty value, prefixed or not, is a nil address.
func ParseAddress(s string) (Address, error) {
	format, value := "hex", s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		format, value = s[:i], s[i+1:]
	}
	if value == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
		return Address(raw), nil
	case "cond":
		cond, err := parseCondition(value)
		if err != nil {
			return nil, err
		}
		if err := cond.Validate(); err != nil {
			return nil, err
		}
		addr = cond.Address()
	case "bech32":
		_, payload, err := bech32.Decode(value)
		if err != nil {
			return nil, err
		}
		addr = Address(payload)
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// HasAddress reports whether any of conds has the address addr.
func HasAddress(conds []Condition, addr Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
