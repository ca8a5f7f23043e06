package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oranolio956/qa-automation-framework-sub005/cmd"
	"github.com/oranolio956/qa-automation-framework-sub005/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}
