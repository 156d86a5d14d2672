// Command cscope manages a small company's carbon emission ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/greenledger/carbonscope/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env file may carry GEMINI_API_KEY for the advisory commands.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
