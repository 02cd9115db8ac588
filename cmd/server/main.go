package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/handler"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/server"
	"github.com/MKhiriev/threadboard/internal/service"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/workers"
	"github.com/MKhiriev/threadboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("threadboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		version, err := db.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Int64("schema_version", version).Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewSessionJanitor(services.SessionService, workers.DefaultJanitorInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
