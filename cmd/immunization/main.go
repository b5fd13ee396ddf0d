package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-immunization/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shell := cli.New(cli.DefaultOpener)
	defer shell.Close()

	return shell.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
