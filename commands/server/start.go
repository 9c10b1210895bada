package server

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/goalchain/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"

	// DefaultBind is the address tendermint connects to by default.
	DefaultBind = "tcp://localhost:26658"
)

// StartOptions are the values used when the matching flag is not given.
type StartOptions struct {
	Bind  string
	Debug bool
}

func parseFlags(defaults StartOptions, args []string) (StartOptions, error) {
	opts := defaults
	if opts.Bind == "" {
		opts.Bind = DefaultBind
	}
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&opts.Bind, flagBind, opts.Bind, "address server listens on")
	startFlags.BoolVar(&opts.Debug, flagDebug, opts.Debug, "call stack returned on error")
	if err := startFlags.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInput, err.Error())
	}
	return opts, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI socket
// protocol until the process receives SIGINT or SIGTERM.
func StartCmd(gen AppGenerator, logger log.Logger, home string, defaults StartOptions, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, gen, logger, home, defaults, args)
}

// serve runs the ABCI server until the context is done.
func serve(ctx context.Context, gen AppGenerator, logger log.Logger, home string, defaults StartOptions, args []string) error {
	opts, err := parseFlags(defaults, args)
	if err != nil {
		return err
	}

	// Generate the app in the proper dir
	app, err := gen(home, logger, opts.Debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", opts.Bind)

	svr, err := server.NewServer(opts.Bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrState, "cannot start server: %s", err)
	}

	<-ctx.Done()
	logger.Info("Stopping ABCI app")
	if err := svr.Stop(); err != nil {
		return errors.Wrapf(errors.ErrState, "cannot stop server: %s", err)
	}
	return nil
}
