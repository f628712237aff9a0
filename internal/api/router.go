package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/timekeep/attendance-system/docs" // swagger docs

	"github.com/timekeep/attendance-system/internal/api/handler"
	"github.com/timekeep/attendance-system/internal/api/middleware"
	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/service"
	mongodb "github.com/timekeep/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/timekeep/attendance-system/internal/infrastructure/db/redis"
	"github.com/timekeep/attendance-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	entryRepo := mongodb.NewEntryRepository(db)
	locationRepo := mongodb.NewLocationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	locationService := service.NewLocationService(locationRepo, redisdb.NewQRCache(rdb), log)
	attendanceService := service.NewAttendanceService(entryRepo, locationService, log)
	summaryService := service.NewSummaryService(entryRepo, cfg.WagePerHour, log)

	authHandler := handler.NewAuthHandler(authService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	locationHandler := handler.NewLocationHandler(locationService)

	adminOnly := []echo.MiddlewareFunc{middleware.Auth(cfg.JWTSecret), middleware.RBAC(domain.RoleAdmin)}

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Attendance routes ---
	e.POST("/api/log", attendanceHandler.Record)
	e.GET("/api/logs/:user_id", attendanceHandler.History)
	e.GET("/api/summary/:user_id", summaryHandler.Today)

	// --- Location registry (admin only) ---
	e.POST("/api/locations", locationHandler.Add, adminOnly...)
	e.GET("/api/qrcode/:location_code", locationHandler.QRCode, adminOnly...)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Static dashboard ---
	e.Static("/", "web/dashboard")
	e.File("/dashboard", "web/dashboard/index.html")

	return e
}
