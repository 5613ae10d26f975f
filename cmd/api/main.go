package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chou-ng-coder/ocr-website/internal/auth"
	"github.com/chou-ng-coder/ocr-website/internal/config"
	"github.com/chou-ng-coder/ocr-website/internal/database"
	"github.com/chou-ng-coder/ocr-website/internal/database/migration"
	"github.com/chou-ng-coder/ocr-website/internal/export"
	handlers "github.com/chou-ng-coder/ocr-website/internal/http/handler"
	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/ocr"
	"github.com/chou-ng-coder/ocr-website/internal/otel"
	"github.com/chou-ng-coder/ocr-website/internal/repository/postgres"
	"github.com/chou-ng-coder/ocr-website/internal/service"
	"github.com/chou-ng-coder/ocr-website/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	// Tracing is a no-op unless OTEL_ENABLED is set
	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (pooled, instrumented via otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create the schema on first boot; subsequent boots are a no-op
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// S3-compatible object storage for uploaded images
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}

	// Repositories and services
	userRepo := postgres.NewUserPostgres(db)
	folderRepo := postgres.NewFolderPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)

	engine := ocr.NewTesseractEngine()
	log.Printf("ocr engine %s ready, languages %v", engine.Name(), cfg.OCR.Languages)

	docSvc := service.NewDocumentService(docRepo, folderRepo, objStore, engine, cfg.OCR)
	svcs := handlers.Services{
		Auth:      service.NewAuthService(userRepo, tokens),
		Documents: docSvc,
		Folders:   service.NewFolderService(folderRepo),
		Analytics: service.NewAnalyticsService(docRepo, folderRepo),
		Export:    service.NewExportService(docSvc, export.NewPDFRenderer()),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    (cfg.OCR.MaxUploadMB + 1) << 20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(logDestination(cfg.Log), loc))
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// logDestination opens the configured log file, falling back to stdout.
func logDestination(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("cannot open log file %s, logging to stdout: %v", cfg.File, err)
		return os.Stdout
	}
	return f
}
