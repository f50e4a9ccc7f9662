package handlers

import (
	"net/http"

	"crewlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the trade/region dictionaries backing the
// public intake form.
type ReferenceHandler struct {
	*BaseHandler
	referenceService *services.ReferenceService
}

func NewReferenceHandler(base *BaseHandler, referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler:      base,
		referenceService: referenceService,
	}
}

func (h *ReferenceHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/trades", h.ListTrades)
	api.GET("/regions", h.ListRegions)
}

func (h *ReferenceHandler) ListTrades(c *gin.Context) {
	trades, err := h.referenceService.ListTrades()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func (h *ReferenceHandler) ListRegions(c *gin.Context) {
	regions, err := h.referenceService.ListRegions()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}
