package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-char-keeper/internal/adapter"
	"github.com/MKhiriev/go-char-keeper/internal/client"
	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
)

func main() {
	log := logger.NewClientLogger("char-keeper-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "commands: register, data [session], email <address>, apis, maps,")
			fmt.Fprintln(os.Stderr, "          characters, main, set-main [characterID], active [session], logged, health")
			stop()
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}
