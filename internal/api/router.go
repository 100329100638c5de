package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medicall/telehealth-api/internal/api/handler"
	"github.com/medicall/telehealth-api/internal/api/middleware"
	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/service"
	"github.com/medicall/telehealth-api/internal/infrastructure/config"
	mongostore "github.com/medicall/telehealth-api/internal/infrastructure/db/mongo"
	redisstore "github.com/medicall/telehealth-api/internal/infrastructure/db/redis"
	"github.com/medicall/telehealth-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// fallback holds the bundled per-role sample datasets served when a session
// record carries no payload.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, fallback map[domain.UserType]domain.DashboardData, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("medicall"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	mirror := redisstore.NewSessionMirror(rdb, cfg.SessionTTL)
	sessionService := service.NewSessionService(mirror, log)
	authService := service.NewAuthService(userRepo, sessionService, cfg.JWTSecret, cfg.TokenTTL, log)
	dashboardService := service.NewDashboardService(fallback, log)
	staffService := service.NewStaffService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	staffHandler := handler.NewStaffHandler(staffService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, sessionService)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	authed := e.Group("", authMiddleware)
	authed.GET("/v1/auth/session", authHandler.Session)
	authed.POST("/v1/auth/logout", authHandler.Logout)

	// --- Dashboards ---
	authed.GET("/v1/dashboard", dashboardHandler.Render)

	// --- Staff management ---
	authed.POST("/v1/hospital/doctors", staffHandler.RegisterDoctor, middleware.RBAC(domain.UserTypeHospital))
	authed.POST("/v1/doctor/schedule/blocks", staffHandler.BlockSchedule, middleware.RBAC(domain.UserTypeDoctor))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
