// Command server runs the FileVault gRPC service. Settings come from
// defaults, an optional JSON config file and command-line flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/filevault/internal/server"
	"github.com/dmitrijs2005/filevault/internal/server/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "filevault:", err)
		os.Exit(1)
	}
}

func run() error {
	// Covers startup only. App.Run installs its own signal handler.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		return err
	}
	stop()

	app.Run(context.Background())
	return nil
}
