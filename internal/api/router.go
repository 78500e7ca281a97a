package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thaigeo/address-api/internal/api/handler"
	"github.com/thaigeo/address-api/internal/api/middleware"
	"github.com/thaigeo/address-api/internal/core/domain"
	"github.com/thaigeo/address-api/internal/core/service"
	mongodb "github.com/thaigeo/address-api/internal/infrastructure/db/mongo"
	redisdb "github.com/thaigeo/address-api/internal/infrastructure/db/redis"
	"github.com/thaigeo/address-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, provinces domain.ProvinceIndex, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("address_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)
	authService := service.NewAuthService(userRepo, issuer, limiter)
	locationService := service.NewLocationService(provinces)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected profile routes ---
	e.GET("/profile", profileHandler.Get, authMiddleware)
	e.PUT("/profile", profileHandler.Update, authMiddleware)

	// --- Location lookups (public, read-only) ---
	e.GET("/provinces", locationHandler.Provinces)
	e.GET("/provinces/all", locationHandler.All)
	e.GET("/provinces/:province", locationHandler.Districts)
	e.GET("/provinces/:province/:district", locationHandler.SubDistricts)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
