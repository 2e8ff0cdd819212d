package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/myhit051/hatyai-restart-sub000/internal/catalog"
	"github.com/myhit051/hatyai-restart-sub000/internal/config"
	"github.com/myhit051/hatyai-restart-sub000/internal/database"
	"github.com/myhit051/hatyai-restart-sub000/internal/handlers"
	"github.com/myhit051/hatyai-restart-sub000/internal/identity"
	"github.com/myhit051/hatyai-restart-sub000/internal/logging"
	"github.com/myhit051/hatyai-restart-sub000/internal/middleware"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/myhit051/hatyai-restart-sub000/internal/routes"
	"github.com/myhit051/hatyai-restart-sub000/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Job category catalog
	registry, err := catalog.LoadFromFile(cfg.CategoriesPath)
	if err != nil {
		slog.Error("failed to load job categories", "path", cfg.CategoriesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("job categories loaded", "categories", len(registry.All()))

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := registry.SeedDB(database.DB); err != nil {
		slog.Error("category seed failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	identityClient := identity.NewClient(cfg)
	userService := services.NewUserService(database.DB, identityClient)
	resourceService := services.NewResourceService(database.DB)
	needService := services.NewNeedService(database.DB)
	matchService := services.NewMatchService(database.DB)
	jobService := services.NewJobService(database.DB)
	generalJobService := services.NewGeneralJobService(database.DB, registry)
	wasteService := services.NewWasteService(database.DB)
	mapService := services.NewMapService(database.DB, models.Coordinates{
		Lat: cfg.MapCenterLat,
		Lng: cfg.MapCenterLng,
	})

	// Handlers
	healthHandler := handlers.NewHealthHandler(registry)
	userHandler := handlers.NewUserHandler(userService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	needHandler := handlers.NewNeedHandler(needService)
	matchHandler := handlers.NewMatchHandler(matchService, needService)
	jobHandler := handlers.NewJobHandler(jobService)
	generalJobHandler := handlers.NewGeneralJobHandler(generalJobService)
	wasteHandler := handlers.NewWasteHandler(wasteService)
	mapHandler := handlers.NewMapHandler(mapService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB,
		healthHandler, userHandler, resourceHandler, needHandler, matchHandler,
		jobHandler, generalJobHandler, wasteHandler, mapHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
