package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medscan/medscan-api/internal/analyzer"
	"github.com/medscan/medscan-api/internal/config"
	"github.com/medscan/medscan-api/internal/db"
	"github.com/medscan/medscan-api/internal/repository"
	"github.com/medscan/medscan-api/internal/router"
	"github.com/medscan/medscan-api/internal/services"
	"github.com/medscan/medscan-api/internal/storage"
	"github.com/medscan/medscan-api/internal/utils"
	"github.com/medscan/medscan-api/internal/verification"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabaseFile)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.DatabaseFile); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Load the verification catalog
	catalog, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load verification catalog", "error", err)
	}

	// Initialize image storage
	imageStore, err := storage.NewS3Storage(
		cfg.S3Endpoint,
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		cfg.S3BucketName,
		cfg.S3UseSSL,
	)
	if err != nil {
		logger.Fatal("Failed to initialize image storage", "error", err)
	}

	// Wire the scan pipeline
	repo := repository.NewRepository(database, cfg.HistoryLimit)
	imageAnalyzer := analyzer.NewGeminiAnalyzer(cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	classifier := verification.NewClassifier(catalog)
	verifier := verification.NewVerifier(classifier, catalog, cfg.VerificationTimeout, logger)
	scanService := services.NewService(repo, imageStore, imageAnalyzer, verifier, logger)

	// Setup HTTP router
	handler := router.NewRouter(scanService, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

func loadCatalog(cfg *config.Config) (*verification.Catalog, error) {
	if cfg.CatalogFile != "" {
		return verification.LoadCatalog(cfg.CatalogFile)
	}
	return verification.DefaultCatalog()
}
