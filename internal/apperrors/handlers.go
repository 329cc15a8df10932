package apperrors

import (
	"schemecheck_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - the standard error envelope returned by the API.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError as the JSON response and aborts the
// request. Server-side errors are logged; the wrapped cause never reaches
// the client.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"code", string(err.Code),
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{Error: err})
}
