package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "bike-rental-billing/internal/api/http"
	"bike-rental-billing/internal/config"
	"bike-rental-billing/internal/jobs"
	"bike-rental-billing/internal/logger"
	"bike-rental-billing/internal/repository/postgres"
	"bike-rental-billing/internal/scheduler"
	"bike-rental-billing/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting bike rental billing server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Rates from config; the database, when configured, replaces them below
	rates, err := service.BuildRates(cfg.Pricing.Plans, cfg.Pricing.Discounts)
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}
	catalog := service.NewRateCatalog(rates)
	logger.Info("Pricing configuration", "plans", len(cfg.Pricing.Plans), "discount_tiers", len(cfg.Pricing.Discounts))

	var sched *scheduler.Scheduler
	if cfg.DatabaseEnabled() {
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Test database connection
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		store := postgres.NewStore(db)
		jobRunner := jobs.NewJobRunner(store.PricingRepository, catalog, cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := jobRunner.RefreshRates(ctx); err != nil {
			logger.Warn("Initial rate table load failed, using configured rates", "error", err)
		}
		cancel()

		sched, err = scheduler.NewScheduler(jobRunner)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
	} else {
		logger.Info("No database configured, using configured rates only")
	}

	pricingSvc := service.NewPricingService(catalog)

	server := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(pricingSvc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
