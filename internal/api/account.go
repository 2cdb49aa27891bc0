package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// AccountHandler serves the account resource and its field-scoped list
// replacements.
type AccountHandler struct {
	accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List handles GET /accounts. Only the caller's own account is visible.
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	accounts, err := h.accounts.List(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// Get handles GET /accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
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

	account, err := h.accounts.Get(c.Request.Context(), userID, id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateDietaryPreferences handles
// POST /accounts/:id/update_dietary_preferences.
func (h *AccountHandler) UpdateDietaryPreferences(c *gin.Context) {
	h.replaceList(c, func(userID, id uuid.UUID, req types.ReplaceListRequest) (interface{}, error) {
		return h.accounts.ReplaceDietaryPreferences(c.Request.Context(), userID, id, req.DietaryPreferences)
	})
}

// UpdateFridgeInventory handles POST /accounts/:id/update_fridge_inventory.
func (h *AccountHandler) UpdateFridgeInventory(c *gin.Context) {
	h.replaceList(c, func(userID, id uuid.UUID, req types.ReplaceListRequest) (interface{}, error) {
		return h.accounts.ReplaceFridgeInventory(c.Request.Context(), userID, id, req.FridgeInventory)
	})
}

// UpdateAllergies handles POST /accounts/:id/update_allergies.
func (h *AccountHandler) UpdateAllergies(c *gin.Context) {
	h.replaceList(c, func(userID, id uuid.UUID, req types.ReplaceListRequest) (interface{}, error) {
		return h.accounts.ReplaceAllergies(c.Request.Context(), userID, id, req.Allergies)
	})
}

func (h *AccountHandler) replaceList(c *gin.Context, apply func(userID, id uuid.UUID, req types.ReplaceListRequest) (interface{}, error)) {
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

	// An absent field replaces the list with empty, matching the original
	// endpoints' semantics.
	var req types.ReplaceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, apperrors.NewValidationError().Add("body", "invalid request body"))
		return
	}

	account, err := apply(userID, id, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// parseID reads the :id path parameter. Unparseable ids map to not-found,
// the same as ids that point at nothing.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrNotFound
	}
	return id, nil
}
