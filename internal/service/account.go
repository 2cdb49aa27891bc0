package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/models"
)

// AccountService exposes the caller's own account and the field-scoped list
// replacements. Addressing another user's account by id is a permission
// error, unlike ingredients and recipes where foreign rows are hidden.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// List returns the accounts visible to the caller: exactly their own.
func (s *AccountService) List(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Get loads an account by id, enforcing ownership.
func (s *AccountService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &account, nil
}

// ReplaceDietaryPreferences replaces the dietary_preferences list wholesale.
func (s *AccountService) ReplaceDietaryPreferences(ctx context.Context, userID, id uuid.UUID, values []string) (*models.Account, error) {
	return s.replaceList(ctx, userID, id, "dietary_preferences", values)
}

// ReplaceFridgeInventory replaces the fridge_inventory list wholesale.
func (s *AccountService) ReplaceFridgeInventory(ctx context.Context, userID, id uuid.UUID, values []string) (*models.Account, error) {
	return s.replaceList(ctx, userID, id, "fridge_inventory", values)
}

// ReplaceAllergies replaces the allergies list wholesale.
func (s *AccountService) ReplaceAllergies(ctx context.Context, userID, id uuid.UUID, values []string) (*models.Account, error) {
	return s.replaceList(ctx, userID, id, "allergies", values)
}

// replaceList is the shared full-replace path. No merge, no vocabulary
// validation; a nil value clears the list. Last write wins under
// concurrent updates.
func (s *AccountService) replaceList(ctx context.Context, userID, id uuid.UUID, column string, values []string) (*models.Account, error) {
	account, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	list := models.StringList(values)
	if list == nil {
		list = models.StringList{}
	}

	if err := s.db.WithContext(ctx).Model(account).Update(column, list).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}
