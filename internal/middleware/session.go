package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/session"
)

const userKey = "user"

// LoginPath is where unauthenticated page requests are sent
const LoginPath = "/login"

// UserLoader resolves the username stored in a session
type UserLoader interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// RequireSession only lets requests with a valid session cookie through. The
// user row is reloaded on every request, so a deleted account ends the
// session: the cookie is cleared and the client is sent to the login page.
func RequireSession(sessions *session.Manager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.FromRequest(c)
		if err != nil {
			if _, cerr := c.Cookie(session.CookieName); cerr == nil {
				sessions.ClearCookie(c)
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		user, err := users.GetUserByUsername(c.Request.Context(), claims.Username())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				logger.FromContext(c.Request.Context()).Info().
					Str("username", claims.Username()).
					Msg("session refers to a deleted user")
				sessions.ClearCookie(c)
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("failed to load session user")
			c.String(http.StatusInternalServerError, "Internal Server Error")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireSession
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
