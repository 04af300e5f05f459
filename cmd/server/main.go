package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/media-finder/internal/adapter"
	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/handler"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/server"
	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/internal/workers"
	"github.com/MKhiriev/media-finder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("media-finder-server")
	log.Info().Stringer("build", build).Msg("starting MediaFinder server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	providers, err := adapter.NewProviders(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media providers")
	}

	services, err := service.NewServices(storages, providers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(workers.NewSessionSweeper(services.SessionService, cfg.Workers, log))
	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	background.Wait()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
