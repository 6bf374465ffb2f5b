// Command ledgerd runs the multi-currency ledger service and its
// maintenance tools.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&serveCmd{}, "")
	commander.Register(&inspectCmd{}, "tools")
	commander.Register(&historyCmd{}, "tools")
	commander.Register(&migrateCmd{}, "tools")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
