// License-manager cluster agent. It polls the vendor license servers, reports
// live usage to the ledger, and sweeps expired bookings.
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

	"github.com/hpc-toolchain/license-manager/pkg/agent"
	"github.com/hpc-toolchain/license-manager/pkg/agent/slurm"
	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
	"github.com/hpc-toolchain/license-manager/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	settings, err := agent.LoadSettingsFromEnv()
	if err != nil {
		slog.Error("Invalid agent settings", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting license-manager agent",
		"version", version.Full(),
		"backend", settings.BackendBaseURL,
		"stat_interval", settings.StatInterval)

	client, err := backend.NewClient(backend.Config{
		BaseURL:      settings.BackendBaseURL,
		AuthDomain:   settings.AuthDomain,
		ClientID:     settings.AuthClientID,
		ClientSecret: settings.AuthClientSecret,
		Audience:     settings.AuthAudience,
		CacheDir:     settings.TokenCacheDir,
	})
	if err != nil {
		slog.Error("Failed to build ledger client", "error", err)
		os.Exit(1)
	}

	var validator *identity.Validator
	if settings.AuthSecret != "" {
		validator, err = identity.NewValidator(identity.DomainConfig{
			Domain:   settings.AuthDomain,
			Audience: settings.AuthAudience,
			Secret:   []byte(settings.AuthSecret),
		})
		if err != nil {
			slog.Error("Failed to build token validator", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("AUTH0_SECRET not set, reconcile trigger endpoint disabled")
	}

	reconciler := agent.NewReconciler(settings, client, slurm.NewClient(settings.SqueuePath))
	httpServer := agent.NewServer(reconciler, client, validator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Acquire the access token eagerly so a broken identity configuration
	// fails the process at startup rather than on the first cycle.
	tokenCtx, tokenCancel := context.WithTimeout(ctx, 30*time.Second)
	if _, err := client.AcquireToken(tokenCtx); err != nil {
		tokenCancel()
		slog.Error("Failed to acquire access token", "error", err)
		os.Exit(1)
	}
	tokenCancel()
	slog.Info("Access token acquired")

	healthCtx, healthCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := client.Health(healthCtx); err != nil {
		slog.Warn("Ledger not reachable at startup, cycles will retry", "error", err)
	}
	healthCancel()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + settings.Port
		slog.Info("Agent HTTP surface listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// Timer-driven reconciliation. One cycle runs immediately at startup.
	go func() {
		ticker := time.NewTicker(settings.StatInterval)
		defer ticker.Stop()

		for {
			if err := reconciler.Cycle(ctx); err != nil {
				slog.Error("Reconciliation cycle failed", "error", err)
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
