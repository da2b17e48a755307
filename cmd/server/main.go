package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/handler"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/server"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("post-board-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("post-board-server", logger.WithLevel(cfg.App.LogLevel))
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, db, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
