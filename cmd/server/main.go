package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fuel-dashboard/internal/adapter"
	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/handler"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/server"
	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/internal/workers"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("fuel-dashboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var cache store.ReportCache
	if cfg.Storage.Cache.Address != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()
		cache = store.NewReportCache(redisClient, cfg.Storage.Cache.TTL)
	}

	storages := store.NewStorages(db, cache, log)

	var feed adapter.MarketPriceFeed
	if cfg.Adapter.MarketPriceURL != "" {
		if feed, err = adapter.NewHTTPMarketPriceFeed(cfg.Adapter, log); err != nil {
			log.Fatal().Err(err).Msg("error creating market price feed")
		}
	}

	services, err := service.NewServices(storages, feed, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating administrator")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers, err := workers.NewWorkers(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}
	bgWorkers.Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
