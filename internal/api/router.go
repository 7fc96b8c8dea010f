package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whelansws/booking-system/internal/api/handler"
	"github.com/whelansws/booking-system/internal/api/middleware"
	"github.com/whelansws/booking-system/internal/core/ports"
	"github.com/whelansws/booking-system/internal/core/service"
	mongodb "github.com/whelansws/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/whelansws/booking-system/internal/infrastructure/db/redis"
	"github.com/whelansws/booking-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	bookingRepo := mongodb.NewBookingRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	checker := redisdb.NewSubmissionChecker(rdb)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	bookingService := service.NewBookingService(bookingRepo, notifier, checker, log)
	adminService := service.NewAdminService(adminRepo, tokenService, log)

	bookingHandler := handler.NewBookingHandler(bookingService)
	adminHandler := handler.NewAdminHandler(adminService)
	authRequired := middleware.Auth(tokenService)

	// --- Booking routes ---
	e.POST("/api/bookings", bookingHandler.Submit)
	e.GET("/api/bookings", bookingHandler.List, authRequired)
	e.GET("/api/bookings/export", bookingHandler.Export, authRequired)
	e.DELETE("/api/bookings/:id", bookingHandler.Archive, authRequired)

	// --- Admin routes ---
	e.POST("/api/admin/register", adminHandler.Register, authRequired)
	e.POST("/api/login", adminHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
