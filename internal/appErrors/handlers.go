package appErrors

import (
	"net/http"

	"crewlink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the gin response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleValidationError converts gin binding errors into the standard envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
