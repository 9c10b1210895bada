package goalchain

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/iov-one/goalchain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantTime UnixTime
		wantErr  *errors.Error
	}{
		"deadline as number": {
			raw:      "1000",
			wantTime: 1000,
		},
		"deadline as string": {
			raw:      `"2019-04-04T11:35:40.89181085+02:00"`,
			wantTime: 1554370540,
		},
		"epoch in another zone": {
			raw:      `"1970-01-01T01:00:00+01:00"`,
			wantTime: 0,
		},
		"negative deadline": {
			raw:      "-1",
			wantTime: -1,
		},
		"largest deadline": {
			raw:      "9223372036854775807",
			wantTime: math.MaxInt64,
		},
		"number out of range": {
			raw:     "9223372036854775808",
			wantErr: errors.ErrInput,
		},
		"fraction of a second": {
			raw:     "1000.5",
			wantErr: errors.ErrInput,
		},
		"not a time": {
			raw:     `"tomorrow"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTime, got)
		})
	}
}

func TestUnixTimePassed(t *testing.T) {
	const deadline UnixTime = 1000
	cases := map[string]struct {
		now  UnixTime
		want bool
	}{
		"long before":      {now: 0, want: false},
		"one second early": {now: 999, want: false},
		"deadline second":  {now: 1000, want: false},
		"one second late":  {now: 1001, want: true},
		"far future":       {now: math.MaxInt64, want: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, deadline.Passed(tc.now))
		})
	}

	var negative UnixTime = -5
	assert.False(t, negative.Passed(math.MinInt64))
	assert.True(t, negative.Passed(0))
}

func TestBlockUnixTime(t *testing.T) {
	_, err := BlockUnixTime(context.Background())
	assert.True(t, errors.ErrHuman.Is(err))

	// sub second precision of the block header is dropped
	block := time.Date(2019, time.April, 4, 9, 35, 40, 999999999, time.UTC)
	got, err := BlockUnixTime(WithBlockTime(context.Background(), block))
	require.NoError(t, err)
	assert.Equal(t, UnixTime(1554370540), got)
	assert.Equal(t, "2019-04-04T09:35:40Z", got.String())
	assert.True(t, got.Time().Equal(block.Truncate(time.Second)))
}
