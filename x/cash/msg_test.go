package cash

import (
	"testing"

	"github.com/iov-one/goalchain/coin"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/weavetest"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestSendMsgValidate(t *testing.T) {
	src := weavetest.NewCondition().Address()
	dst := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg       *SendMsg
		wantField map[string]*errors.Error
	}{
		"valid": {
			msg: &SendMsg{Source: src, Destination: dst, Amount: coin.NewCoinp(5, "GOAL"), Memo: "lunch"},
			wantField: map[string]*errors.Error{
				"Source":      nil,
				"Destination": nil,
				"Amount":      nil,
				"Memo":        nil,
			},
		},
		"invalid currency": {
			msg: &SendMsg{Source: src, Destination: dst, Amount: coin.NewCoinp(5, "goal")},
			wantField: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"short destination": {
			msg: &SendMsg{Source: src, Destination: dst[:5], Amount: coin.NewCoinp(5, "GOAL")},
			wantField: map[string]*errors.Error{
				"Source":      nil,
				"Destination": errors.ErrInput,
			},
		},
		"memo too long": {
			msg: &SendMsg{Source: src, Destination: dst, Amount: coin.NewCoinp(5, "GOAL"), Memo: string(make([]byte, 129))},
			wantField: map[string]*errors.Error{
				"Memo": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantField {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestSendMsgSerialization(t *testing.T) {
	msg := &SendMsg{
		Source:      weavetest.NewCondition().Address(),
		Destination: weavetest.NewCondition().Address(),
		Amount:      coin.NewCoinp(5, "GOAL"),
		Memo:        "lunch",
	}
	raw, err := msg.Marshal()
	assert.Nil(t, err)

	var got SendMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, &got)
}
