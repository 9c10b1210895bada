package main

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/iov-one/goalchain/commands/server"
	"github.com/iov-one/goalchain/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// config is read from the environment. Command line flags take precedence.
type config struct {
	Home     string `env:"GOALD_HOME"`
	LogLevel string `env:"GOALD_LOG_LEVEL" envDefault:"info"`
	Bind     string `env:"GOALD_BIND" envDefault:"tcp://localhost:26658"`
	Debug    bool   `env:"GOALD_DEBUG"`
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return c, errors.Wrapf(errors.ErrInput, "parse env: %s", err)
	}
	if c.Home == "" {
		c.Home = filepath.Join(os.ExpandEnv("$HOME"), ".goald")
	}
	return c, nil
}

func (c config) startOptions() server.StartOptions {
	return server.StartOptions{Bind: c.Bind, Debug: c.Debug}
}

// newLogger returns a logger writing to stdout that drops everything below
// the given level.
func newLogger(level string) (log.Logger, error) {
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, allow).With("module", "goald"), nil
}
