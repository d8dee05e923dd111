package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindscope-app/mindscope/internal/adapter/oracle"
	"github.com/mindscope-app/mindscope/internal/config"
	"github.com/mindscope-app/mindscope/internal/identity"
	"github.com/mindscope-app/mindscope/internal/observability"
	"github.com/mindscope-app/mindscope/internal/policy"
	"github.com/mindscope-app/mindscope/internal/repository"
	handler "github.com/mindscope-app/mindscope/internal/transport/http"
	"github.com/mindscope-app/mindscope/internal/wellness"
)

func main() {
	// Load configuration
	cfg := config.Load()
	observability.Init(cfg.LogLevel)
	log := observability.Logger()

	log.Info("starting mindscope",
		"http_port", cfg.HTTPPort,
		"database", cfg.DatabaseURL,
		"oracle_url", cfg.OracleURL,
		"oracle_model", cfg.OracleModel)

	// Initialize store
	store, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Initialize oracle
	backend := oracle.NewBackend(cfg.OracleURL, cfg.OracleAPIKey, cfg.OracleTimeout, log)
	ora := oracle.New(backend, cfg.OracleModel, log)

	// Initialize care policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Error("failed to initialize policy engine", "error", err)
		os.Exit(1)
	}

	// Initialize services
	identitySvc := identity.NewService(store, cfg.JWTSecret, cfg.TokenTTL, log)
	sessions := wellness.NewManager(store, ora, log)
	defer sessions.Close()

	// Create HTTP server
	server := handler.NewServer(identitySvc, sessions, ora, policyEngine, log)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("API started", "port", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", "error", err)
	}

	log.Info("stopped")
}
