package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body for failed portal requests. Business
// rejections (a duplicate booking) never use it; those travel as normal
// acknowledgment payloads with acknowledged:false.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from handler panics so one bad request cannot take
// the portal down, answering with a generic server fault.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic while serving request",
					zap.String("path", c.FullPath()),
					zap.Any("error", r))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "The portal could not process this request. Please retry.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
