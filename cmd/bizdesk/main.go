package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/bizdesk/internal/core/services"
	"github.com/SscSPs/bizdesk/internal/handlers"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/platform/config"
	"github.com/SscSPs/bizdesk/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/SscSPs/bizdesk/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title BizDesk API
// @version 1.0
// @description Accounting, HR, vendor and user administration for a small business.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions, closeSessions := sessionStorage(ctx, cfg, logger)
	defer closeSessions()

	roleDirectory := roles.Default()
	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(
		repos,
		roleDirectory,
		services.WithNotifier(notify.ContextNotifier{Fallback: notify.LogNotifier{Logger: logger}}),
		services.WithCacheConfig(cfg.QueryCacheSize, cfg.QueryCacheTTL),
	)

	authLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		logger.Error("Failed to build auth rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}

	// Global middleware (cors, logging, recovery, per request notifications)
	r.Use(cors.New(corsConfig), middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.NotificationRecorder())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, handlers.Deps{
		Sessions:  sessions,
		Roles:     roleDirectory,
		Users:     repos.UserRepo,
		AuthLimit: middleware.RateLimit(authLimiter),
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// sessionStorage picks Redis when configured, otherwise process memory.
func sessionStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (session.Storage, func()) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, sessions are kept in memory and lost on restart")
		return session.NewMemoryStorage(), func() {}
	}
	storage := session.NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.JWTExpiryDuration)
	if err := storage.Ping(ctx); err != nil {
		logger.Error("Failed to reach redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Session storage connected", slog.String("addr", cfg.RedisAddr))
	return storage, func() {
		if err := storage.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
