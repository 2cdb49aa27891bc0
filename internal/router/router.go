package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fridgechef/backend/internal/api"
	"github.com/fridgechef/backend/internal/middleware"
)

// Options carries everything the route table needs.
type Options struct {
	Health      *api.HealthHandler
	Auth        *api.AuthHandler
	Users       *api.UserHandler
	Accounts    *api.AccountHandler
	Ingredients *api.IngredientHandler
	Recipes     *api.RecipeHandler
	LLM         *api.LLMHandler

	Validator      middleware.TokenValidator
	GenerationRate *middleware.RateLimiter // nil disables rate limiting
	Logger         *zap.Logger
	AllowedOrigins []string
}

// New configures the application routes.
func New(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))

	requireAuth := middleware.AuthMiddleware(opts.Validator)

	router.GET("/health", opts.Health.Check)

	// Auth endpoints. Register, login and the health probe are the only
	// open routes.
	auth := router.Group("/auth")
	{
		auth.POST("/register", opts.Auth.Register)
		auth.POST("/login", opts.Auth.Login)
		auth.POST("/logout", requireAuth, opts.Auth.Logout)
		auth.GET("/user", requireAuth, opts.Auth.CurrentUser)
	}

	// Identity and account resources, scoped to the caller.
	users := router.Group("/users", requireAuth)
	{
		users.GET("", opts.Users.List)
		users.GET("/:id", opts.Users.Get)
	}

	accounts := router.Group("/accounts", requireAuth)
	{
		accounts.GET("", opts.Accounts.List)
		accounts.GET("/:id", opts.Accounts.Get)
		accounts.POST("/:id/update_dietary_preferences", opts.Accounts.UpdateDietaryPreferences)
		accounts.POST("/:id/update_fridge_inventory", opts.Accounts.UpdateFridgeInventory)
		accounts.POST("/:id/update_allergies", opts.Accounts.UpdateAllergies)
	}

	// Pantry inventory.
	ingredients := router.Group("/ingredients", requireAuth)
	{
		ingredients.GET("", opts.Ingredients.List)
		ingredients.POST("", opts.Ingredients.Create)
		ingredients.GET("/:id", opts.Ingredients.Get)
		ingredients.PUT("/:id", opts.Ingredients.Replace)
		ingredients.PATCH("/:id", opts.Ingredients.Update)
		ingredients.DELETE("/:id", opts.Ingredients.Delete)
	}

	// Saved recipes. The split between list/create and detail paths matches
	// the frontend this serves.
	saveRecipe := router.Group("/save-recipe", requireAuth)
	{
		saveRecipe.GET("", opts.Recipes.List)
		saveRecipe.POST("", opts.Recipes.Create)
	}
	recipeDetail := router.Group("/recipes-detail", requireAuth)
	{
		recipeDetail.GET("/:id", opts.Recipes.Get)
		recipeDetail.PATCH("/:id", opts.Recipes.Update)
		recipeDetail.DELETE("/:id", opts.Recipes.Delete)
	}

	// AI generation proxy.
	generation := router.Group("/recipes", requireAuth)
	if opts.GenerationRate != nil {
		generation.Use(opts.GenerationRate.Middleware())
	}
	generation.POST("", opts.LLM.Generate)

	return router
}
