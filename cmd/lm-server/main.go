// License-manager ledger server. It stores clusters, configurations, feature
// inventories and bookings, and serves the REST API the agents and the CLI
// talk to.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hpc-toolchain/license-manager/pkg/api"
	"github.com/hpc-toolchain/license-manager/pkg/database"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
	"github.com/hpc-toolchain/license-manager/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	basePath := getEnv("LM_BASE_PATH", api.DefaultBasePath)

	slog.Info("Starting license-manager ledger",
		"version", version.Full(),
		"http_port", httpPort,
		"base_path", basePath)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	domains, err := identity.LoadDomainConfigsFromEnv()
	if err != nil {
		slog.Error("Failed to load identity config", "error", err)
		os.Exit(1)
	}
	validator, err := identity.NewValidator(domains...)
	if err != nil {
		slog.Error("Failed to build token validator", "error", err)
		os.Exit(1)
	}
	slog.Info("Token validator initialized", "domains", len(domains))

	httpServer := api.NewServer(basePath, dbClient, validator)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
