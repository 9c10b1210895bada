package goalchain_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/weavetest/assert"
)

type genesisWallet struct {
	Name  string `json:"name"`
	Coins int    `json:"coins"`
}

func TestOptionsStream(t *testing.T) {
	cases := map[string]struct {
		genesis     string
		wantOpenErr *errors.Error
		want        []genesisWallet
		// wantStop is returned by the call after the last element of want.
		wantStop *errors.Error
	}{
		"two wallets": {
			genesis:  `{"cash": [{"name": "alice", "coins": 10}, {"name": "bob"}]}`,
			want:     []genesisWallet{{Name: "alice", Coins: 10}, {Name: "bob"}},
			wantStop: errors.ErrEmpty,
		},
		"empty list": {
			genesis:  `{"cash": []}`,
			wantStop: errors.ErrEmpty,
		},
		"missing key": {
			genesis:     `{"stake": {}}`,
			wantOpenErr: errors.ErrEmpty,
		},
		"malformed second element": {
			genesis:  `{"cash": [{"name": "alice"}, {"coins": "many"}]}`,
			want:     []genesisWallet{{Name: "alice"}},
			wantStop: errors.ErrInput,
		},
		"not a list": {
			genesis:  `{"cash": {"name": "alice"}}`,
			wantStop: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts goalchain.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			next, err := opts.Stream("cash")
			assert.IsErr(t, tc.wantOpenErr, err)
			if tc.wantOpenErr != nil {
				return
			}

			for _, want := range tc.want {
				var got genesisWallet
				assert.Nil(t, next(&got))
				assert.Equal(t, want, got)
			}
			var w genesisWallet
			assert.IsErr(t, tc.wantStop, next(&w))
			assert.IsErr(t, errors.ErrState, next(&w))
		})
	}
}

func TestReadOptions(t *testing.T) {
	var opts goalchain.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"stake": {"ticker": "GOAL"}, "broken": 7}`), &opts))

	cases := map[string]struct {
		key        string
		wantErr    bool
		wantTicker string
	}{
		"present": {
			key:        "stake",
			wantTicker: "GOAL",
		},
		"missing key leaves the value alone": {
			key:        "cash",
			wantTicker: "KEEP",
		},
		"wrong type": {
			key:        "broken",
			wantErr:    true,
			wantTicker: "KEEP",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf := struct {
				Ticker string `json:"ticker"`
			}{Ticker: "KEEP"}
			err := opts.ReadOptions(tc.key, &conf)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantTicker, conf.Ticker)
		})
	}
}
