package stake

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    *Configuration
	}{
		"configured": {
			genesis: `{"conf": {"stake": {"ticker": "GOAL", "storage_rate": 2}}}`,
			want:    &Configuration{Ticker: "GOAL", StorageRate: 2},
		},
		"missing": {
			genesis: `{"conf": {"cash": {}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid ticker": {
			genesis: `{"conf": {"stake": {"ticker": "x", "storage_rate": 2}}}`,
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts goalchain.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.want == nil {
				return
			}
			conf, err := loadConf(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, conf)
		})
	}
}
