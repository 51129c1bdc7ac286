package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/corebank/banking-system/docs"
	"github.com/corebank/banking-system/internal/api/handler"
	"github.com/corebank/banking-system/internal/api/middleware"
	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/service"
	"github.com/corebank/banking-system/internal/infrastructure/config"
	mongodb "github.com/corebank/banking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/corebank/banking-system/internal/infrastructure/db/redis"
	"github.com/corebank/banking-system/internal/infrastructure/http/handlers"
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
	e.Use(echoprometheus.NewMiddleware("banking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	creditRepo := mongodb.NewCreditRequestRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	creditService := service.NewCreditRequestService(creditRepo, clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)
	rmHandler := handler.NewRMHandler(clientService, creditService)
	analystHandler := handler.NewAnalystHandler(creditService)

	authMW := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, authMW, middleware.RequireRole(domain.RoleAdmin))

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)

	// --- RM routes ---
	rm := e.Group("/rm", authMW, middleware.RequireRole(domain.RoleRM))
	rm.GET("/clients", rmHandler.ListClients)
	rm.POST("/clients", rmHandler.CreateClient)
	rm.GET("/clients/:id", rmHandler.GetClient)
	rm.PUT("/clients/:id", rmHandler.UpdateClient)
	rm.GET("/credit-requests", rmHandler.ListCreditRequests)
	rm.POST("/credit-requests", rmHandler.CreateCreditRequest)
	rm.GET("/credit-requests/:id", rmHandler.GetCreditRequest)

	// --- Analyst routes ---
	analyst := e.Group("/analyst", authMW, middleware.RequireRole(domain.RoleAnalyst))
	analyst.GET("/credit-requests", analystHandler.ListCreditRequests)
	analyst.GET("/credit-requests/:id", analystHandler.GetCreditRequest)
	analyst.PUT("/credit-requests/:id", analystHandler.Review)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
