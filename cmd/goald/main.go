package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/goalchain"
	goald "github.com/iov-one/goalchain/cmd/goald/app"
	"github.com/iov-one/goalchain/commands/server"
)

const (
	flagHome     = "home"
	flagLogLevel = "log_level"
)

func helpMessage() {
	fmt.Println("goald")
	fmt.Println("          Deadline gated escrow node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check the app_state of genesis files")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.goald", env GOALD_HOME)
  -log_level string
        lowest level logged: debug, info, error or none (default "info", env GOALD_LOG_LEVEL)

start flags:
  -bind string
        address server listens on (default "tcp://localhost:26658", env GOALD_BIND)
  -debug
        call stack returned on error (env GOALD_DEBUG)`)
}

func main() {
	conf, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	home := flag.String(flagHome, conf.Home, "directory to store files under")
	logLevel := flag.String(flagLogLevel, conf.LogLevel, "lowest level logged")
	flag.CommandLine.Usage = helpMessage
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(goald.GenInitOptions, logger, *home, rest)
	case "start":
		err = server.StartCmd(goald.GenerateApp, logger, *home, conf.startOptions(), rest)
	case "validate":
		if len(rest) == 0 {
			rest = []string{server.GenesisPath(*home)}
		}
		err = server.ValidateGenesis(goald.Initializers(), rest)
	case "version":
		fmt.Println(goalchain.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
