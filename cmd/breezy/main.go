// Command breezy fetches aggregated weather and manages the tracked cities
// from the terminal, using the same configuration and database as the server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("breezy"),
		kong.Description("Breezy weather from the command line."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&runtime{ctx: ctx, out: os.Stdout, logLevel: cli.LogLevel})
	kctx.FatalIfErrorf(err)
}
