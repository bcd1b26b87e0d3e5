package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/client"
	"github.com/academyhub/academy-client/internal/config"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/service"
	"github.com/academyhub/academy-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// A missing .env file is fine; the environment itself still applies.
	_ = godotenv.Load()

	log := logger.NewClientLogger("academy-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		DevHost: cfg.Adapter.DevHost,
		Timeout: cfg.Adapter.RequestTimeout,
		Log:     log,
	})

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, api, cfg.Adapter, log)
	app := client.NewApp(services, cfg.Workers, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("client start error")
	}
	log.Info().Str("origin", api.BaseURL()).Msg("client ready")

	// Config parsing consumed the leading flags; whatever follows is the
	// subcommand. With none given, stay up until interrupted so the session
	// keepalive keeps the stored token fresh.
	if args := flag.Args(); len(args) > 0 {
		code := runCommand(ctx, app, args)
		app.Stop()
		os.Exit(code)
	}

	<-ctx.Done()
	app.Stop()
	log.Info().Msg("client stopped")
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
