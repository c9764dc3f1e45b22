package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskdesk/config"
	_ "taskdesk/docs" // Swagger docs
	"taskdesk/internal/httpserver"
	"taskdesk/pkg/firestore"
	"taskdesk/pkg/gidentity"
	"taskdesk/pkg/log"
)

// @title       TaskDesk API
// @description Task management backend with bearer-token auth and per-user task storage.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskDesk API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Firestore
	store, err := firestore.NewClient(ctx, firestore.Config{
		ProjectID:       cfg.Firestore.ProjectID,
		DatabaseID:      cfg.Firestore.DatabaseID,
		CredentialsFile: cfg.Firestore.CredentialsFile,
		BaseURL:         cfg.Firestore.BaseURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Firestore client: %v", err)
		return
	}

	// 4. Identity provider
	identity, err := gidentity.NewClient(ctx, gidentity.Config{
		ProjectID:       cfg.Identity.ProjectID,
		CredentialsFile: cfg.Identity.CredentialsFile,
		BaseURL:         cfg.Identity.BaseURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize identity provider: %v", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Firestore:       store,
		Identity:        identity,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
