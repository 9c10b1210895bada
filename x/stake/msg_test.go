package stake

import (
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/weavetest"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestStakeTaskMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg       StakeTaskMsg
		wantOwner *errors.Error
	}{
		"owner taken from the signer": {
			msg: StakeTaskMsg{TaskID: 1, Deadline: 10, StakeAmount: 5},
		},
		"explicit owner": {
			msg: StakeTaskMsg{Owner: weavetest.NewCondition().Address(), TaskID: 1},
		},
		"past deadline": {
			msg: StakeTaskMsg{TaskID: 1, Deadline: -10},
		},
		"invalid owner": {
			msg:       StakeTaskMsg{Owner: goalchain.Address{0x01, 0x02}},
			wantOwner: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.FieldError(t, tc.msg.Validate(), "Owner", tc.wantOwner)
		})
	}
}

func TestCompleteTaskMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg       CompleteTaskMsg
		wantOwner *errors.Error
	}{
		"valid": {
			msg: CompleteTaskMsg{Owner: weavetest.NewCondition().Address(), TaskID: 3},
		},
		"zero task id": {
			msg: CompleteTaskMsg{Owner: weavetest.NewCondition().Address()},
		},
		"missing owner": {
			msg:       CompleteTaskMsg{TaskID: 3},
			wantOwner: errors.ErrEmpty,
		},
		"invalid owner": {
			msg:       CompleteTaskMsg{Owner: goalchain.Address{0x01}, TaskID: 3},
			wantOwner: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.FieldError(t, tc.msg.Validate(), "Owner", tc.wantOwner)
		})
	}
}

func TestMsgWire(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	stake := StakeTaskMsg{Owner: owner, TaskID: 7, Deadline: -3, StakeAmount: 1 << 40}
	raw, err := stake.Marshal()
	assert.Nil(t, err)
	var gotStake StakeTaskMsg
	assert.Nil(t, gotStake.Unmarshal(raw))
	assert.Equal(t, stake, gotStake)

	complete := CompleteTaskMsg{Owner: owner, TaskID: 7}
	raw, err = complete.Marshal()
	assert.Nil(t, err)
	var gotComplete CompleteTaskMsg
	assert.Nil(t, gotComplete.Unmarshal(raw))
	assert.Equal(t, complete, gotComplete)
	assert.Equal(t, EscrowKey(owner, 7), gotComplete.Key())

	assert.Equal(t, "stake/stake_task", stake.Path())
	assert.Equal(t, "stake/complete_task", complete.Path())
}
