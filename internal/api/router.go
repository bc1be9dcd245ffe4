package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/veridianlabs/identity-api/internal/api/handler"
	"github.com/veridianlabs/identity-api/internal/api/middleware"
	"github.com/veridianlabs/identity-api/internal/core/ports"
	"github.com/veridianlabs/identity-api/internal/core/service"
	mongostore "github.com/veridianlabs/identity-api/internal/infrastructure/db/mongo"
	redisstore "github.com/veridianlabs/identity-api/internal/infrastructure/db/redis"
)

// Options carries the router's process-level settings.
type Options struct {
	JWTSecret           string
	TokenTTL            time.Duration
	RegistrationEnabled bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	principalRepo := mongostore.NewPrincipalRepository(db)
	clientRepo := mongostore.NewClientRepository(db)
	userRepo := mongostore.NewUserRepository(db)
	privilegeRepo := mongostore.NewPrivilegeRepository(db)
	settings := redisstore.NewSettingStore(rdb, map[string]bool{
		ports.SettingRegistrationEnabled: opts.RegistrationEnabled,
	})

	clientService := service.NewClientService(principalRepo, clientRepo, privilegeRepo, log)
	registrationService := service.NewRegistrationService(userRepo, log)
	tokenService := service.NewTokenService(userRepo, opts.JWTSecret, opts.TokenTTL)

	clientHandler := handler.NewClientHandler(clientService)
	registerHandler := handler.NewRegisterHandler(registrationService)
	tokenHandler := handler.NewTokenHandler(tokenService)
	authMiddleware := middleware.Auth(opts.JWTSecret)
	registrationGate := middleware.RegistrationGate(settings)

	// --- Auth routes ---
	e.POST("/auth/token", tokenHandler.Login)

	// --- Registration routes (feature-gated) ---
	reg := e.Group("/register", registrationGate)
	reg.GET("", registerHandler.Form)
	reg.POST("", registerHandler.Register)

	// --- OAuth2 client admin routes ---
	app := e.Group("/app/:id", authMiddleware)
	app.GET("/client/:clientId/edit", clientHandler.EditForm)
	app.POST("/client/:clientId/edit", clientHandler.Edit)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
