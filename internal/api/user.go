package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
)

// UserHandler serves the identity resource, scoped to the caller.
type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	users, err := h.auth.ListUsers(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id. Foreign ids are indistinguishable from
// missing ones.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}
	id, err := parseID(c)
	if err != nil {
		Error(c, err)
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userID, id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
