package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Details: appErr.Details})
		return
	}

	slog.Error("unhandled request error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// BindError sends a 400 response for a request that failed binding.
func BindError(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Details: []string{err.Error()}})
}
