package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophershop/internal/client/cli"
	"github.com/iudanet/gophershop/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Ctrl+C отменяет текущий запрос и останавливает watch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := cli.New(iocli.NewStdio(), cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})

	if err := client.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
