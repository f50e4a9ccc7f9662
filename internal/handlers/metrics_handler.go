package handlers

import (
	"net/http"

	"crewlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	*BaseHandler
	metricsService *services.MetricsService
}

func NewMetricsHandler(base *BaseHandler, metricsService *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		BaseHandler:    base,
		metricsService: metricsService,
	}
}

// GetPlatformMetrics handles GET /api/v1/metrics. Guarded by the
// monitoring middleware in production.
func (h *MetricsHandler) GetPlatformMetrics(c *gin.Context) {
	metrics, err := h.metricsService.GetPlatformMetrics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
