package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"mediarate/database"
	"mediarate/internal/config"
	"mediarate/internal/httpapi/handler"
	"mediarate/internal/httpapi/middleware"
	"mediarate/internal/httpapi/repository"
	"mediarate/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Error("could not connect to redis", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	contentRepo := repository.NewContentRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	blacklist := repository.NewTokenBlacklist(redisClient)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, blacklist, cfg)
	userService := service.NewUserService(userRepo)
	contentService := service.NewContentService(contentRepo)
	ratingService := service.NewRatingService(db, ratingRepo, contentRepo, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	userHandler := handler.NewUserHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/healthz", healthHandler.Check)

	authRequired := middleware.AuthMiddleware(authService)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	userHandler.RegisterRoutes(api, authRequired)

	contents := api.Group("/contents")
	contentHandler.RegisterRoutes(contents, authRequired)
	ratingHandler.RegisterRoutes(contents, authRequired)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting API server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
