// package main provides the entry point for the vulnmgt-backend service,
// serving the vulnerability manager REST and GraphQL APIs.
package main

import (
	"time"

	"github.com/ortelius/vulnmgt-backend/internal/api"
	"github.com/ortelius/vulnmgt-backend/internal/config"
	"github.com/ortelius/vulnmgt-backend/restapi/modules/auth"
	"github.com/ortelius/vulnmgt-backend/store"
	"go.uber.org/zap"
)

func main() {
	logger := store.InitLogger()
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	auth.SetJWTSecret(cfg.JWTSecret)
	auth.SetTokenTTL(time.Duration(cfg.TokenTTLHours) * time.Hour)

	// Demo accounts; swap for a database-backed CredentialStore when one exists
	creds := auth.NewInMemoryCredentialStore(auth.DefaultSeedUsers())

	vulnStore := store.NewVulnerabilityStore()

	app := api.NewFiberApp(vulnStore, creds, cfg)

	logger.Info("vulnmgt-backend listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
