package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/faizmokh/jurnal/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cli.Main(ctx)
}
