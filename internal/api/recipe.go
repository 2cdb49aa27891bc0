package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// RecipeHandler serves the saved-recipe collection.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// List handles GET /save-recipe with search, favorite and page parameters.
func (h *RecipeHandler) List(c *gin.Context) {
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

	params := types.ListRecipesParams{
		Search:       c.Query("search"),
		FavoriteOnly: c.Query("favorite") == "true",
		Page:         page,
	}

	resp, err := h.recipes.List(c.Request.Context(), userID, params)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /save-recipe.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		Error(c, apperrors.ErrUnauthenticated)
		return
	}

	var req types.CreateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// Get handles GET /recipes-detail/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
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

	recipe, err := h.recipes.Get(c.Request.Context(), userID, id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Update handles PATCH /recipes-detail/:id. Partial update only; the usual
// caller toggles the favorite flag.
func (h *RecipeHandler) Update(c *gin.Context) {
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

	var req types.UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Delete handles DELETE /recipes-detail/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
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

	if err := h.recipes.Delete(c.Request.Context(), userID, id); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
