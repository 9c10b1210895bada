package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/store"
	"github.com/iov-one/goalchain/weavetest"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		Handler  *weavetest.Handler
		Deliver  bool
		Level    log.Option
		WantLogs []string
		NoLogs   bool
	}{
		"successful check is logged at debug level": {
			Handler:  &weavetest.Handler{CheckResult: goalchain.CheckResult{Log: "checked"}},
			Level:    log.AllowDebug(),
			WantLogs: []string{"checked", "duration="},
		},
		"successful check is hidden at info level": {
			Handler: &weavetest.Handler{CheckResult: goalchain.CheckResult{Log: "checked"}},
			Level:   log.AllowInfo(),
			NoLogs:  true,
		},
		"successful deliver is logged at info level": {
			Handler:  &weavetest.Handler{DeliverResult: goalchain.DeliverResult{Log: "delivered"}},
			Deliver:  true,
			Level:    log.AllowInfo(),
			WantLogs: []string{"delivered", "duration="},
		},
		"failure is logged with the error": {
			Handler:  &weavetest.Handler{DeliverErr: errors.ErrNotFound.New("escrow")},
			Deliver:  true,
			Level:    log.AllowError(),
			WantLogs: []string{"err=", "not found"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(&buf)), tc.Level)
			ctx := goalchain.WithLogger(context.Background(), logger)
			h := weavetest.Decorate(tc.Handler, NewLogging())

			if tc.Deliver {
				h.Deliver(ctx, store.MemStore(), &weavetest.Tx{})
			} else {
				h.Check(ctx, store.MemStore(), &weavetest.Tx{})
			}

			out := buf.String()
			if tc.NoLogs && out != "" {
				t.Fatalf("unexpected log output: %q", out)
			}
			for _, want := range tc.WantLogs {
				if !strings.Contains(out, want) {
					t.Fatalf("%q not found in log output: %q", want, out)
				}
			}
		})
	}
}
