package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/service"
)

// errorStatusMap is checked in order, so specific errors come before the
// class they wrap.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrUnauthorized, http.StatusForbidden},
}

const internalErrorMessage = "Internal Server Error"

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the text shown to the client. Anything that maps to 500
// is replaced by a generic message.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return internalErrorMessage
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}

func logError(c *gin.Context, err error, status int) {
	_ = c.Error(err)
	log := logger.FromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		return
	}
	log.Debug().Err(err).Int("status", status).Msg("request rejected")
}

// pageError answers a page route with a plain-text error
func pageError(c *gin.Context, err error) {
	status := statusFromError(err)
	logError(c, err, status)
	c.String(status, publicMessage(err, status))
}

// jsonError answers a JSON route with {"error": msg}
func jsonError(c *gin.Context, err error) {
	status := statusFromError(err)
	logError(c, err, status)
	c.JSON(status, gin.H{"error": publicMessage(err, status)})
}
