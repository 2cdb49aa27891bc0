package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// AuthHandler serves the register/login/logout/current-user endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	user, account, token, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		Error(c, err)
		return
	}

	setSessionCookie(c, token, h.auth.SessionTTL())
	c.JSON(http.StatusCreated, types.SessionResponse{User: user, Account: account})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	user, account, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		Error(c, err)
		return
	}

	setSessionCookie(c, token, h.auth.SessionTTL())
	c.JSON(http.StatusOK, types.SessionResponse{User: user, Account: account})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.SessionID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		Error(c, err)
		return
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "successfully logged out"})
}

// CurrentUser handles GET /auth/user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	user, account, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, types.SessionResponse{User: user, Account: account})
}

func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
