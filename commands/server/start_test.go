package server

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/goalchain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abcicli "github.com/tendermint/tendermint/abci/client"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestParseFlags(t *testing.T) {
	cases := map[string]struct {
		defaults StartOptions
		args     []string
		want     StartOptions
		wantErr  *errors.Error
	}{
		"defaults": {
			want: StartOptions{Bind: DefaultBind},
		},
		"environment defaults": {
			defaults: StartOptions{Bind: "unix:///tmp/goald.sock", Debug: true},
			want:     StartOptions{Bind: "unix:///tmp/goald.sock", Debug: true},
		},
		"flags override": {
			defaults: StartOptions{Bind: "unix:///tmp/goald.sock", Debug: true},
			args:     []string{"-bind", "tcp://0.0.0.0:1234", "-debug=false"},
			want:     StartOptions{Bind: "tcp://0.0.0.0:1234"},
		},
		"unknown flag": {
			args:    []string{"-min_fee", "1 IOV"},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := parseFlags(tc.defaults, tc.args)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestServe(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping ABCI socket test")
	}

	const bind = "tcp://127.0.0.1:46671"
	var gotHome string
	var gotDebug bool
	gen := func(home string, logger log.Logger, debug bool) (abci.Application, error) {
		gotHome, gotDebug = home, debug
		return abci.NewBaseApplication(), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, gen, log.NewNopLogger(), "/tmp/goald", StartOptions{Bind: bind}, []string{"-debug"})
	}()

	client := connect(t, bind, 2*time.Second)
	res, err := client.EchoSync("goal")
	require.NoError(t, err)
	assert.Equal(t, "goal", res.Message)
	client.Stop()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, "/tmp/goald", gotHome)
	assert.True(t, gotDebug)
}

// connect retries connecting to the ABCI server until it is listening.
func connect(t *testing.T, addr string, timeout time.Duration) abcicli.Client {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		client := abcicli.NewSocketClient(addr, true)
		err := client.Start()
		if err == nil {
			return client
		}
		if time.Now().After(deadline) {
			t.Fatalf("cannot connect to %s: %s", addr, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestServeGeneratorError(t *testing.T) {
	gen := func(string, log.Logger, bool) (abci.Application, error) {
		return nil, errors.ErrDatabase
	}
	err := serve(context.Background(), gen, log.NewNopLogger(), "", StartOptions{}, nil)
	assert.True(t, errors.ErrDatabase.Is(err))
}
