package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/types"
)

// RecipesPerPage is the page size of the recipe listing.
const RecipesPerPage = 9

// RecipeService owns the saved-recipe collection, scoped per user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns one page of the user's recipes, newest first, optionally
// filtered by title substring and favorite flag.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID, params types.ListRecipesParams) (*types.RecipeListResponse, error) {
	page := params.Page
	if page < 1 {
		return nil, apperrors.NewValidationError().Add("page", "page must be a positive integer")
	}

	query := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", userID)
	if params.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}
	if params.FavoriteOnly {
		query = query.Where("favorite = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	info := types.NewPageInfo(count, page, RecipesPerPage)

	var results []models.Recipe
	err := query.
		Order("created_at DESC").
		Offset(info.Offset(RecipesPerPage)).
		Limit(RecipesPerPage).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Recipe{}
	}

	return &types.RecipeListResponse{PageInfo: info, Results: results}, nil
}

// Create persists a recipe for the session user. Timestamps are
// server-assigned.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, req types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Favorite:    req.Favorite,
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = models.RecipeIngredientList{}
	}
	if recipe.Steps == nil {
		recipe.Steps = models.StringList{}
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Get retrieves one recipe scoped to its owner.
func (s *RecipeService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update applies a partial update. The usual caller is the favorite toggle.
func (s *RecipeService) Update(ctx context.Context, userID, id uuid.UUID, req types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperrors.NewValidationError().Add("title", "this field may not be blank")
		}
		recipe.Title = *req.Title
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}
	if req.Favorite != nil {
		recipe.Favorite = *req.Favorite
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe. Hard delete, owner-scoped.
func (s *RecipeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
