package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed API call. Errors carries
// per-field messages for form validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorHandler recovers panics raised further down the chain and answers 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			GetLogger().Error("unhandled panic",
				zap.Any("error", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal Server Error",
				Details: "An unexpected error occurred. Please try again later.",
			})
		}()
		c.Next()
	}
}

// JSONError writes a failure body. Server errors are logged at error level,
// client errors at warn.
func JSONError(c *gin.Context, status int, message, details string) {
	fields := []zap.Field{zap.Int("status", status), zap.String("path", c.FullPath())}
	if details != "" {
		fields = append(fields, zap.String("details", details))
	}
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, fields...)
	} else {
		GetLogger().Warn(message, fields...)
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONFieldErrors answers 422 with a message per invalid field.
func JSONFieldErrors(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: message, Errors: fields})
}
