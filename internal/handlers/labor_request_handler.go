package handlers

import (
	"net/http"

	"crewlink_backend/internal/services"
	"crewlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LaborRequestHandler struct {
	*BaseHandler
	laborRequestService *services.LaborRequestService
	summaryService      *services.SummaryService
}

func NewLaborRequestHandler(
	base *BaseHandler,
	laborRequestService *services.LaborRequestService,
	summaryService *services.SummaryService,
) *LaborRequestHandler {
	return &LaborRequestHandler{
		BaseHandler:         base,
		laborRequestService: laborRequestService,
		summaryService:      summaryService,
	}
}

// RegisterRoutes wires the public intake endpoints. No auth group: the
// submitter's only credential is the confirmation token.
func (h *LaborRequestHandler) RegisterRoutes(api *gin.RouterGroup) {
	requests := api.Group("/labor-requests")
	{
		requests.POST("", h.Submit)
		requests.GET("/summary", h.GetSummary)
	}
}

// Submit handles POST /api/v1/labor-requests. Public: contractors do
// not hold accounts.
func (h *LaborRequestHandler) Submit(c *gin.Context) {
	var input dto.SubmitRequestInput
	if !h.BindAndValidate_JSON(c, &input) {
		return
	}

	result, err := h.laborRequestService.Submit(&input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetSummary handles GET /api/v1/labor-requests/summary?token=...
// The confirmation token is the only credential.
func (h *LaborRequestHandler) GetSummary(c *gin.Context) {
	token := c.Query("token")

	summary, err := h.summaryService.GetByToken(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
