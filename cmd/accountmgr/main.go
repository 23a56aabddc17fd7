package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-mgr/internal/config"
	"github.com/MKhiriev/go-account-mgr/internal/crypto"
	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("accountmgr", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("accountmgr", cfg.App.LogPath)
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	cipher := crypto.NewCipherService(cfg.App.EncryptionSecret)
	repository := store.NewAccountRepository(db, cipher, log)
	services := service.NewServices(repository, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("ui run error")
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
