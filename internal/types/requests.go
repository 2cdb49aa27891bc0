package types

import (
	"github.com/fridgechef/backend/internal/models"
)

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned by register, login and the current-user
// endpoint: the identity plus its account snapshot.
type SessionResponse struct {
	User    *models.User    `json:"user"`
	Account *models.Account `json:"account"`
}

// CreateIngredientRequest is the payload for POST /ingredients and for full
// replaces via PUT. Field-level validation (enums, date format) happens in
// the service so the error shape is uniform.
type CreateIngredientRequest struct {
	Name           string   `json:"name"`
	IconName       string   `json:"icon_name"`
	Category       string   `json:"category"`
	ExpirationDate string   `json:"expiration_date"`
	Quantity       *float64 `json:"quantity"`
	Unit           string   `json:"unit"`
}

// UpdateIngredientRequest is the payload for PATCH /ingredients/:id. Nil
// fields are left untouched.
type UpdateIngredientRequest struct {
	Name           *string  `json:"name"`
	IconName       *string  `json:"icon_name"`
	Category       *string  `json:"category"`
	ExpirationDate *string  `json:"expiration_date"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
}

// ListIngredientsParams are the recognized query parameters of
// GET /ingredients.
type ListIngredientsParams struct {
	Search    string
	Category  string
	Condition string
	Page      int
}

// IngredientListResponse is a page of ingredients.
type IngredientListResponse struct {
	PageInfo
	Results []models.Ingredient `json:"results"`
}

// CreateRecipeRequest is the payload for POST /save-recipe.
type CreateRecipeRequest struct {
	Title       string                      `json:"title" binding:"required"`
	Ingredients models.RecipeIngredientList `json:"ingredients"`
	Steps       models.StringList           `json:"steps"`
	Favorite    bool                        `json:"favorite"`
}

// UpdateRecipeRequest is the payload for PATCH /recipes-detail/:id. Only
// non-nil fields are applied; timestamps are never client-writable.
type UpdateRecipeRequest struct {
	Title       *string                      `json:"title"`
	Ingredients *models.RecipeIngredientList `json:"ingredients"`
	Steps       *models.StringList           `json:"steps"`
	Favorite    *bool                        `json:"favorite"`
}

// ListRecipesParams are the recognized query parameters of GET /save-recipe.
type ListRecipesParams struct {
	Search       string
	FavoriteOnly bool
	Page         int
}

// RecipeListResponse is a page of recipes.
type RecipeListResponse struct {
	PageInfo
	Results []models.Recipe `json:"results"`
}

// ReplaceListRequest carries the full replacement value for one of the
// account's list fields. Exactly one field is read per endpoint; a missing
// field replaces the list with empty.
type ReplaceListRequest struct {
	DietaryPreferences []string `json:"dietary_preferences"`
	FridgeInventory    []string `json:"fridge_inventory"`
	Allergies          []string `json:"allergies"`
}

// GenerateRequest is the payload for the AI generation proxy. Everything but
// the prompt has a default.
type GenerateRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	TopP        *float64 `json:"top_p"`
}

// GenerateChoice is one generated completion in the proxy response.
type GenerateChoice struct {
	Text string `json:"text"`
}

// GenerateResponse mirrors the envelope the original frontend consumes.
type GenerateResponse struct {
	Choices []GenerateChoice `json:"choices"`
}
