package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery turns a panic into a 500. JSON routes under /api get an
// ErrorResponse, pages get plain text. The panic value is only logged.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.FromContext(c.Request.Context()).Error().
			Interface("panic", err).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")

		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		c.Abort()
	})
}
