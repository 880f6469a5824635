package middleware

import (
	"time"

	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	LoggerKey       = "logger"
)

// RequestLogger tags every request with an id, stores a scoped logger under
// LoggerKey and logs the outcome once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		logger := utils.GetLogger().With(
			zap.String("requestId", requestID),
			zap.String("ip", clientIP(c)),
		)
		c.Set(LoggerKey, logger)

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
