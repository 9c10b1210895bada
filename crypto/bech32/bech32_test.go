package bech32

import (
	"encoding/hex"
	"testing"

	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestBech32EncodeDecode(t *testing.T) {
	cases := map[string]struct {
		enc     string
		hrp     string
		payload string
	}{
		"test payload": {
			enc:     "tiov1w3jhxapdwpshjmr0v9jqymqq4y",
			hrp:     "tiov",
			payload: "746573742d7061796c6f6164",
		},
		"goal prefix": {
			enc:     "goal1wd6xz6m9946xzumth9tpwy",
			hrp:     "goal",
			payload: "7374616b652d7461736b",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			want, err := hex.DecodeString(tc.payload)
			assert.Nil(t, err)

			hrp, payload, err := Decode(tc.enc)
			assert.Nil(t, err)
			assert.Equal(t, tc.hrp, hrp)
			assert.Equal(t, want, payload)

			raw, err := Encode(hrp, payload)
			assert.Nil(t, err)
			assert.Equal(t, tc.enc, raw)
		})
	}
}

func TestBech32DecodeInvalid(t *testing.T) {
	cases := map[string]string{
		"bad checksum":   "goal1wd6xz6m9946xzumth9tpwq",
		"no separator":   "goalwd6xz6m9946xzumth9tpwy",
		"invalid letter": "goal1bd6xz6m9946xzumth9tpwy",
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			_, _, err := Decode(raw)
			assert.IsErr(t, errors.ErrInput, err)
		})
	}
}
