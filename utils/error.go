package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error answer: {message, details?}.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// LoggerFrom returns the request-scoped logger set by the request logger
// middleware, or the application logger.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}

// ErrorHandler recovers handler panics into a 500 carrying the request id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				LoggerFrom(c).Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				details := "Ocurrió un error inesperado. Intenta más tarde."
				if id := c.Writer.Header().Get("X-Request-ID"); id != "" {
					details += " (ref " + id + ")"
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: details,
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs through the request logger and writes an ErrorResponse.
// 5xx answers log at error level, the rest at warn.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := LoggerFrom(c)
	fields := []zap.Field{zap.Int("status", status), zap.String("details", details)}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
