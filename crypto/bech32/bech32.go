// Package bech32 encodes raw byte payloads, such as addresses, with the
// btcutil bech32 codec. The codec itself works on 5-bit groups.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/goalchain/errors"
)

// Decode returns the human readable part and the payload of s.
func Decode(s string) (hrp string, payload []byte, err error) {
	hrp, groups, err := bech32.Decode(s)
	if err == nil {
		payload, err = bech32.ConvertBits(groups, 5, 8, false)
	}
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 %q: %s", s, err)
	}
	return hrp, payload, nil
}

// Encode writes payload under the human readable part hrp.
func Encode(hrp string, payload []byte) (string, error) {
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 hrp %q: %s", hrp, err)
	}
	return s, nil
}
