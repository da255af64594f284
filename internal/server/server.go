// Package server assembles the Fiber application from its dependencies.
package server

import (
	"slices"
	"strings"

	"footballfinder/internal/config"
	"footballfinder/internal/handlers"
	"footballfinder/internal/metrics"
	"footballfinder/internal/middleware"
	"footballfinder/internal/repositories"
	"footballfinder/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the process-wide resources the application is built from.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Log       *logrus.Logger
	Publisher services.GameEventPublisher // optional
	Registry  *prometheus.Registry        // optional; a fresh registry is created when nil
}

// App is the assembled application.
type App struct {
	Fiber       *fiber.App
	AuthService *services.AuthService
	GameService *services.GameService
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
}

// New wires repositories, services, handlers and middleware into a Fiber app.
func New(deps Deps) *App {
	cfg := deps.Config

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.New(registry)

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	gameRepo := repositories.NewGORMGameRepository(deps.DB)

	// --- Services ---
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	gameService := services.NewGameService(gameRepo, deps.Publisher, deps.Log)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, m, deps.Log)
	gameHandler := handlers.NewGameHandler(gameService, authService, m, deps.Log)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	app := fiber.New(fiber.Config{
		AppName:               "footballfinder",
		ErrorHandler:          handlers.ErrorHandler(deps.Log),
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.LogMiddleware(deps.Log, m))
	app.Use(recover.New())
	app.Use(corsMiddleware(cfg.AllowedOrigins))

	// --- Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	gameHandler.RegisterRoutes(api)

	app.Get("/health", healthHandler.HandleHealth)
	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	return &App{
		Fiber:       app,
		AuthService: authService,
		GameService: gameService,
		Metrics:     m,
		Registry:    registry,
	}
}

// corsMiddleware allows the configured origins. Credentials are only allowed for an explicit
// origin list since Fiber rejects them together with a wildcard.
func corsMiddleware(origins []string) fiber.Handler {
	allowOrigins := strings.Join(origins, ",")
	allowCredentials := allowOrigins != "" && !slices.Contains(origins, "*")
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: allowCredentials,
	})
}
