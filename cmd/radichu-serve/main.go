// Package main is the entry point for the radichu-serve gateway.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radichu/radichu-serve/internal/api"
	"github.com/radichu/radichu-serve/internal/config"
	"github.com/radichu/radichu-serve/internal/radichu"
	"github.com/radichu/radichu-serve/pkg/logger"
	"github.com/radichu/radichu-serve/pkg/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Log configuration (without sensitive data)
	log.Printf("Server config: Address=%s", cfg.Server.Address)
	log.Printf("Schedule config: BaseURL=%s, DefaultChannel=%s, Timezone=%s",
		cfg.Schedule.BaseURL, cfg.Schedule.DefaultChannel, cfg.Schedule.Timezone)

	// Initialize logger
	logLevel := "info"
	if cfg.LogLevel >= 5 {
		logLevel = "debug"
	}

	if err := logger.Initialize(logLevel, cfg.Environment != "production"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// The playlist collaborator gets its configuration section untouched.
	fetcher := radichu.NewClient(cfg.Radichu)

	// Setup gateway router
	router := api.SetupRouter(cfg, fetcher)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting radichu-serve %s on %s", version.Version, cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
