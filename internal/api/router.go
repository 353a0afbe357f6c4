package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/notably/notes-api/internal/api/handler"
	"github.com/notably/notes-api/internal/api/middleware"
	"github.com/notably/notes-api/internal/core/ports"
	"github.com/notably/notes-api/internal/core/service"
	"github.com/notably/notes-api/internal/infrastructure/config"
	mongostore "github.com/notably/notes-api/internal/infrastructure/db/mongo"
	redisstore "github.com/notably/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, activity ports.ActivitySink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	noteRepo := mongostore.NewNoteRepository(db)
	idem := redisstore.NewIdempotencyStore(rdb)

	tokens := service.NewJWTTokenService(service.StaticKey(cfg.JWTSecret), cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, activity, log)
	noteService := service.NewNoteService(userRepo, noteRepo, idem, activity, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)

	// --- Open routes (no token yet) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	notes := e.Group("/notes", middleware.Auth(tokens))
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
