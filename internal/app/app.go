package app

import (
	"fmt"

	"crewlink_backend/database"
	"crewlink_backend/internal/config"
	"crewlink_backend/internal/email"
	"crewlink_backend/internal/handlers"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/middleware"
	"crewlink_backend/internal/ratelimit"
	"crewlink_backend/internal/routes"
	"crewlink_backend/internal/services"
	"crewlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	limiter := initializeLimiter(cfg)
	emailProvider := initializeEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, limiter, emailProvider)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, cfg, limiter)

	return ginRouter
}

// initializeLimiter picks the failure-count backend: redis when an
// address is configured, otherwise the in-process store.
func initializeLimiter(cfg *config.Config) ratelimit.Limiter {
	if cfg.RateLimit.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		logger.Info("Rate limiter backend: redis", "addr", cfg.RateLimit.RedisAddr)
		return ratelimit.NewRedisLimiter(client, cfg.Window(), cfg.RateLimit.Threshold)
	}
	logger.Info("Rate limiter backend: in-memory")
	return ratelimit.NewMemoryLimiter(cfg.Window(), cfg.RateLimit.Threshold)
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, outbound email is a no-op")
		return &MockEmailProvider{}
	}
	return email.NewSMTPProvider(cfg)
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
