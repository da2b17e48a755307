package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/client"
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	log := logger.NewLogger("post-board-client", logger.WithLevel(cfg.LogLevel), logger.WithOutput(os.Stderr))

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		stop()
		os.Exit(1)
	}
}
