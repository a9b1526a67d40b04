package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/handlers"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/middleware"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/places"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/services"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/telemetry"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/firebase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// @title Dine Saver API
// @version 1.0.0
// @description Restaurant discovery and expense tracking API
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.ServerEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize OpenTelemetry Tracer
	ctx := context.Background()
	tracerShutdown, err := telemetry.InitTracer(ctx, "dinesaver-api", cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// Initialize OpenTelemetry Metrics
	meterShutdown, err := telemetry.InitMeter(ctx, "dinesaver-api", cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Error shutting down metrics: %v", err)
		}
	}()

	// Initialize database
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := database.Connect(connectCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Initialize the Firebase verifier. Login is degraded, not fatal,
	// when credentials are absent.
	var verifier services.TokenVerifier
	fb, err := firebase.NewVerifier(ctx, cfg.FirebaseCredentialsJSON, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Firebase verifier unavailable, /api/login disabled: %v", err)
	} else {
		verifier = fb
	}

	// External search providers
	google := places.NewGoogleClient(cfg.GooglePlacesAPIKey, cfg.SearchRadiusMeters, cfg.SearchLanguage)
	yelp := places.NewYelpClient(cfg.YelpAPIKey)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Dine Saver API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	// JSON structured access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     `{"time":"${time}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","user_agent":"${ua}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
		TimeZone:   "Asia/Tokyo",
	}))
	app.Use(telemetry.New(telemetry.Config{
		ServiceName: "dinesaver-api",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowHeaders:     "Accept, Accept-Encoding, Authorization, Content-Type, DNT, Origin, User-Agent, X-Requested-With",
		AllowCredentials: false,
		ExposeHeaders:    "Content-Length, Content-Type",
		MaxAge:           86400,
	}))
	app.Use(middleware.Prometheus())

	// Setup routes
	setupRoutes(app, db, cfg, verifier, google, yelp)

	// Start server
	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, db *database.DB, cfg *config.Config, verifier services.TokenVerifier, google *places.GoogleClient, yelp *places.YelpClient) {
	// Health check endpoints for k8s probes
	app.Get("/healthz", handlers.HealthCheck)
	app.Get("/readyz", handlers.ReadinessCheck(db))

	// Prometheus scrape endpoint
	app.Get("/metrics", middleware.PrometheusHandler())

	api := app.Group("/api")

	// Search routes (public)
	handlers.SetupSearchRoutes(api, google, yelp)

	// Auth handoff (no session token required)
	handlers.SetupAuthRoutes(api, verifier, cfg)

	// Expense routes; session token attaches an identity when present
	expenses := api.Group("/expenses", middleware.OptionalAuth(cfg))
	handlers.SetupExpenseRoutes(expenses, db)

	// User profile routes
	users := api.Group("/user")
	handlers.SetupUserRoutes(users, db)
}
