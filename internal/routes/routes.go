package routes

import (
	"crewlink_backend/internal/config"
	"crewlink_backend/internal/handlers"
	"crewlink_backend/internal/middleware"
	"crewlink_backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	cfg *config.Config,
	limiter ratelimit.Limiter,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.LaborRequest.RegisterRoutes(api)
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Reference.RegisterRoutes(api)

		metrics := api.Group("/metrics")
		metrics.Use(middleware.MonitoringAuth(cfg, limiter))
		{
			metrics.GET("", appHandlers.Metrics.GetPlatformMetrics)
		}
	}

	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
