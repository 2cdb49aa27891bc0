package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// IngredientHandler serves the pantry inventory endpoints.
type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// List handles GET /ingredients with search, category, condition and page
// query parameters.
func (h *IngredientHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	page, err := pageParam(c)
	if err != nil {
		Error(c, err)
		return
	}

	params := types.ListIngredientsParams{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
		Page:      page,
	}

	resp, err := h.ingredients.List(c.Request.Context(), userID, params)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /ingredients.
func (h *IngredientHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	var req types.CreateIngredientRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), userID, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// Get handles GET /ingredients/:id.
func (h *IngredientHandler) Get(c *gin.Context) {
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

	ingredient, err := h.ingredients.Get(c.Request.Context(), userID, id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Replace handles PUT /ingredients/:id, a full field replacement.
func (h *IngredientHandler) Replace(c *gin.Context) {
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

	var req types.CreateIngredientRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	ingredient, err := h.ingredients.Replace(c.Request.Context(), userID, id, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Update handles PATCH /ingredients/:id, a partial update.
func (h *IngredientHandler) Update(c *gin.Context) {
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

	var req types.UpdateIngredientRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	ingredient, err := h.ingredients.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Delete handles DELETE /ingredients/:id.
func (h *IngredientHandler) Delete(c *gin.Context) {
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

	if err := h.ingredients.Delete(c.Request.Context(), userID, id); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pageParam reads the page query parameter, defaulting to 1.
func pageParam(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, apperrors.NewValidationError().Add("page", "page must be a positive integer")
	}
	return page, nil
}
