package goalchain_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexademical address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := goalchain.Address(b)

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", b))
		So(goalchain.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexademical condition printing", t, func() {
		cond := goalchain.NewCondition("stake", "escrow", []byte{0xAB, 0x01})

		So(cond.String(), ShouldEqual, "stake/escrow/AB01")
		So(goalchain.Condition("broken").String(), ShouldStartWith, "Invalid Condition")
	})
}

func TestAddressValidation(t *testing.T) {
	Convey("addresses are the full digest of a condition", t, func() {
		cond := goalchain.NewCondition("sigs", "ed25519", []byte("pubkey"))
		addr := cond.Address()

		So(len(addr), ShouldEqual, goalchain.AddressLength)
		So(addr.Validate(), ShouldBeNil)
		So(addr.Equals(goalchain.NewAddress(cond)), ShouldBeTrue)
		So(addr.Equals(goalchain.NewCondition("sigs", "ed25519", []byte("other")).Address()), ShouldBeFalse)
	})

	Convey("wrong sized addresses are rejected", t, func() {
		So(errors.ErrEmpty.Is(goalchain.Address(nil).Validate()), ShouldBeTrue)
		So(errors.ErrInput.Is(goalchain.Address([]byte("short")).Validate()), ShouldBeTrue)
	})

	Convey("clone does not share memory", t, func() {
		addr := goalchain.NewAddress([]byte("data"))
		cpy := addr.Clone()
		cpy[0]++
		So(addr.Equals(cpy), ShouldBeFalse)
	})
}

func TestParseAddress(t *testing.T) {
	full := goalchain.NewCondition("foo", "bar", []byte("conditiondata")).Address()
	b32, err := full.Bech32("goal")
	require.NoError(t, err)
	short, err := goalchain.Address("hex-addr").Bech32("goal")
	require.NoError(t, err)
	// swap the last checksum character
	last := byte('q')
	if b32[len(b32)-1] == last {
		last = 'p'
	}
	broken := b32[:len(b32)-1] + string(last)

	cases := map[string]struct {
		raw      string
		wantErr  *errors.Error
		wantAddr goalchain.Address
	}{
		"plain hex": {
			raw:      "6865782d61646472",
			wantAddr: goalchain.Address("hex-addr"),
		},
		"hex prefix": {
			raw:      "hex:6865782d61646472",
			wantAddr: goalchain.Address("hex-addr"),
		},
		"bad hex": {
			raw:     "hex:xyz",
			wantErr: errors.ErrInput,
		},
		"condition": {
			raw:      "cond:foo/bar/636f6e646974696f6e64617461",
			wantAddr: full,
		},
		"condition with two parts": {
			raw:     "cond:foo/636f6e646974696f6e64617461",
			wantErr: errors.ErrInput,
		},
		"condition with bad data": {
			raw:     "cond:foo/bar/zzzzz",
			wantErr: errors.ErrInput,
		},
		"bech32": {
			raw:      "bech32:" + b32,
			wantAddr: full,
		},
		"bech32 of a short address": {
			raw:     "bech32:" + short,
			wantErr: errors.ErrInput,
		},
		"bech32 with a bad checksum": {
			raw:     "bech32:" + broken,
			wantErr: errors.ErrInput,
		},
		"unknown prefix": {
			raw:     "foobar:xxx",
			wantErr: errors.ErrType,
		},
		"empty": {
			raw: "",
		},
		"empty hex": {
			raw: "hex:",
		},
		"empty condition": {
			raw: "cond:",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := goalchain.ParseAddress(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if !reflect.DeepEqual(addr, tc.wantAddr) {
				t.Fatalf("got address: %q", addr)
			}

			// json goes through the same parser
			var fromJSON goalchain.Address
			raw, _ := json.Marshal(tc.raw)
			err = json.Unmarshal(raw, &fromJSON)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got json error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(fromJSON, tc.wantAddr) {
				t.Fatalf("got json address: %q", fromJSON)
			}
		})
	}
}

func TestAddressMarshalJSON(t *testing.T) {
	addr := goalchain.Address([]byte{0xde, 0xad, 0xbe, 0xef})
	got, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"DEADBEEF"`, string(got))

	var back goalchain.Address
	require.NoError(t, json.Unmarshal(got, &back))
	assert.Equal(t, addr, back)
}

func TestConditionJSON(t *testing.T) {
	cond := goalchain.NewCondition("foo", "bar", []byte("conditiondata"))

	Convey("a condition is written as its string form", t, func() {
		raw, err := json.Marshal(cond)
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `"foo/bar/636F6E646974696F6E64617461"`)

		var back goalchain.Condition
		So(json.Unmarshal(raw, &back), ShouldBeNil)
		So(back.Equals(cond), ShouldBeTrue)
	})

	Convey("lower case data is accepted", t, func() {
		var got goalchain.Condition
		So(json.Unmarshal([]byte(`"foo/bar/636f6e646974696f6e64617461"`), &got), ShouldBeNil)
		So(got.Equals(cond), ShouldBeTrue)
	})

	Convey("nil and the empty string map to each other", t, func() {
		raw, err := json.Marshal(goalchain.Condition(nil))
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `""`)

		got := goalchain.Condition("placeholder")
		So(json.Unmarshal(raw, &got), ShouldBeNil)
		So(got, ShouldBeNil)
	})

	Convey("malformed conditions are input errors", t, func() {
		for _, raw := range []string{`"foo/636f6e646974696f6e64617461"`, `"foo/bar/zzzzz"`, `7`} {
			var got goalchain.Condition
			So(errors.ErrInput.Is(json.Unmarshal([]byte(raw), &got)), ShouldBeTrue)
		}
	})
}

func TestConditionParse(t *testing.T) {
	cond := goalchain.NewCondition("stake", "escrow", []byte("key\nwith newline"))
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "stake", ext)
	assert.Equal(t, "escrow", typ)
	assert.Equal(t, []byte("key\nwith newline"), data)

	_, _, _, err = goalchain.Condition("no-slashes").Parse()
	assert.True(t, errors.ErrInput.Is(err))
	assert.True(t, errors.ErrInput.Is(goalchain.Condition("a/b/c").Validate()))
}
