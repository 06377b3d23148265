package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/session"
	"github.com/pageza/recipebox/backend/internal/types"
)

// AuthHandler serves registration, login, logout and account deletion
type AuthHandler struct {
	auth     service.IAuthService
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.IAuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// ShowRegister renders the registration form
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// Register creates the account and sends the user to the login page
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		pageError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Uint("user_id", user.ID).
		Str("username", user.Username).
		Msg("user registered")
	redirect(c, middleware.LoginPath)
}

// ShowLogin renders the login form
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login checks the credentials and issues the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		pageError(c, err)
		return
	}

	if err := h.sessions.SetCookie(c, user.Username); err != nil {
		pageError(c, err)
		return
	}
	redirect(c, "/")
}

// Logout always succeeds, with or without a session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	redirect(c, middleware.LoginPath)
}

// DeleteUser removes the signed-in user's own account
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		redirect(c, middleware.LoginPath)
		return
	}

	username := c.Param("username")
	if err := h.auth.DeleteUser(c.Request.Context(), actor, username); err != nil {
		pageError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().Str("username", username).Msg("user deleted")
	h.sessions.ClearCookie(c)
	redirect(c, middleware.LoginPath)
}
