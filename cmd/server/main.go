package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/handler"
	"github.com/MKhiriev/go-char-keeper/internal/lock"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/metrics"
	"github.com/MKhiriev/go-char-keeper/internal/server"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/MKhiriev/go-char-keeper/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("char-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("lock_backend", cfg.Lock.Backend).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	locker, err := lock.NewLocker(ctx, cfg.Lock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating locker")
	}
	defer locker.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	services, err := service.NewServices(storages, locker, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	repairWorker := workers.NewMainCharacterRepairWorker(
		storages.UserCharacterRepository,
		services.CharacterService,
		m,
		cfg.Workers,
		log,
	)

	srv, err := server.NewServer(handlers, cfg.Server, log, repairWorker)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
