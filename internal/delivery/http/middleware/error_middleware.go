package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rsvp-backend/internal/delivery/http/response"
	"rsvp-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Category, appErr.Message)
			return
		}

		log.ErrorContext(c.Request.Context(), "Unexpected error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, apperror.CategoryInternal, err.Error())
	}
}

// Recovery renders a panic as an internal error response.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "Recovered from panic", "panic", recovered, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, apperror.CategoryInternal, fmt.Sprint(recovered))
		c.Abort()
	})
}
