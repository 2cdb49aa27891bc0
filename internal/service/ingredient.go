package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/types"
)

// IngredientsPerPage is the page size of the inventory listing.
const IngredientsPerPage = 10

// Freshness condition buckets. Together they partition the expiration axis:
// expired < today <= expiring_soon <= today+3 < expiring_week <= today+7 < good.
const (
	ConditionExpired      = "expired"
	ConditionExpiringSoon = "expiring_soon"
	ConditionExpiringWeek = "expiring_week"
	ConditionGood         = "good"
)

// IngredientService owns the pantry inventory. Every query is scoped to the
// requesting user; foreign rows are indistinguishable from missing ones.
type IngredientService struct {
	db *gorm.DB

	// now is injectable so bucket boundaries are testable.
	now func() time.Time
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{
		db:  db,
		now: time.Now,
	}
}

// List returns one page of the user's inventory, filtered by name substring,
// category and freshness condition, ordered by expiration date ascending.
func (s *IngredientService) List(ctx context.Context, userID uuid.UUID, params types.ListIngredientsParams) (*types.IngredientListResponse, error) {
	page := params.Page
	if page < 1 {
		return nil, apperrors.NewValidationError().Add("page", "page must be a positive integer")
	}

	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}
	if params.Category != "" {
		if !models.IsValidCategory(params.Category) {
			return nil, apperrors.NewValidationError().Add("category", "unknown category")
		}
		query = query.Where("category = ?", params.Category)
	}
	if params.Condition != "" {
		filtered, err := s.applyCondition(query, params.Condition)
		if err != nil {
			return nil, err
		}
		query = filtered
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	info := types.NewPageInfo(count, page, IngredientsPerPage)

	var results []models.Ingredient
	err := query.
		Order("expiration_date ASC").
		Offset(info.Offset(IngredientsPerPage)).
		Limit(IngredientsPerPage).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Ingredient{}
	}

	return &types.IngredientListResponse{PageInfo: info, Results: results}, nil
}

// applyCondition adds the date-range predicate for a freshness bucket,
// computed against the server's current date.
func (s *IngredientService) applyCondition(query *gorm.DB, condition string) (*gorm.DB, error) {
	today := models.NewDate(s.now())
	switch condition {
	case ConditionExpired:
		return query.Where("expiration_date < ?", today), nil
	case ConditionExpiringSoon:
		return query.Where("expiration_date >= ? AND expiration_date <= ?", today, today.AddDays(3)), nil
	case ConditionExpiringWeek:
		return query.Where("expiration_date > ? AND expiration_date <= ?", today.AddDays(3), today.AddDays(7)), nil
	case ConditionGood:
		return query.Where("expiration_date > ?", today.AddDays(7)), nil
	default:
		return nil, apperrors.NewValidationError().Add("condition", "must be one of expired, expiring_soon, expiring_week, good")
	}
}

// Create validates and persists a new ingredient. The owner is always the
// session user, whatever the payload claims.
func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, req types.CreateIngredientRequest) (*models.Ingredient, error) {
	fields, err := validateIngredientFields(req)
	if err != nil {
		return nil, err
	}
	fields.UserID = userID

	if err := s.db.WithContext(ctx).Create(fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// Get retrieves one ingredient scoped to its owner.
func (s *IngredientService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// Replace performs a full update: the same validation as Create, applied to
// an existing row.
func (s *IngredientService) Replace(ctx context.Context, userID, id uuid.UUID, req types.CreateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields, err := validateIngredientFields(req)
	if err != nil {
		return nil, err
	}

	ingredient.Name = fields.Name
	ingredient.IconName = fields.IconName
	ingredient.Category = fields.Category
	ingredient.ExpirationDate = fields.ExpirationDate
	ingredient.Quantity = fields.Quantity
	ingredient.Unit = fields.Unit

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Update applies a partial update; nil fields keep their current value.
func (s *IngredientService) Update(ctx context.Context, userID, id uuid.UUID, req types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError()
	if req.Name != nil {
		if *req.Name == "" {
			verr.Add("name", "this field may not be blank")
		} else {
			ingredient.Name = *req.Name
		}
	}
	if req.IconName != nil {
		ingredient.IconName = *req.IconName
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			verr.Add("category", "unknown category")
		} else {
			ingredient.Category = *req.Category
		}
	}
	if req.ExpirationDate != nil {
		date, err := models.ParseDate(*req.ExpirationDate)
		if err != nil {
			verr.Add("expiration_date", "date must be in YYYY-MM-DD format")
		} else {
			ingredient.ExpirationDate = date
		}
	}
	if req.Quantity != nil {
		ingredient.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		if !models.IsValidUnit(*req.Unit) {
			verr.Add("unit", "unknown unit")
		} else {
			ingredient.Unit = *req.Unit
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an ingredient. Hard delete, owner-scoped.
func (s *IngredientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// validateIngredientFields checks every required field and enum for the
// create/full-replace path, accumulating messages per field.
func validateIngredientFields(req types.CreateIngredientRequest) (*models.Ingredient, error) {
	verr := apperrors.NewValidationError()

	if req.Name == "" {
		verr.Add("name", "this field is required")
	}
	if req.Category == "" {
		verr.Add("category", "this field is required")
	} else if !models.IsValidCategory(req.Category) {
		verr.Add("category", "unknown category")
	}

	var date models.Date
	if req.ExpirationDate == "" {
		verr.Add("expiration_date", "this field is required")
	} else {
		parsed, err := models.ParseDate(req.ExpirationDate)
		if err != nil {
			verr.Add("expiration_date", "date must be in YYYY-MM-DD format")
		} else {
			date = parsed
		}
	}

	if req.Quantity == nil {
		verr.Add("quantity", "this field is required")
	}
	if req.Unit == "" {
		verr.Add("unit", "this field is required")
	} else if !models.IsValidUnit(req.Unit) {
		verr.Add("unit", "unknown unit")
	}

	if !verr.Empty() {
		return nil, verr
	}

	return &models.Ingredient{
		Name:           req.Name,
		IconName:       req.IconName,
		Category:       req.Category,
		ExpirationDate: date,
		Quantity:       *req.Quantity,
		Unit:           req.Unit,
	}, nil
}
