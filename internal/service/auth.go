package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/types"
)

// AuthService owns registration, login and the identity endpoints.
type AuthService struct {
	db       *gorm.DB
	sessions *SessionService
}

func NewAuthService(db *gorm.DB, sessions *SessionService) *AuthService {
	return &AuthService{
		db:       db,
		sessions: sessions,
	}
}

// Register creates a user and its account in one transaction and starts a
// session. Duplicate username or email leaves no rows behind.
func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (*models.User, *models.Account, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	account := models.Account{
		DietaryPreferences: models.StringList{},
		Allergies:          models.StringList{},
		FridgeInventory:    models.StringList{},
		SavedRecipes:       models.StringList{},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrUsernameTaken
		}
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrEmailTaken
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		account.UserID = user.ID
		return tx.Create(&account).Error
	})
	if err != nil {
		return nil, nil, "", err
	}

	token, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, nil, "", err
	}
	return &user, &account, token, nil
}

// Login verifies credentials and starts a session. Unknown usernames and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, *models.Account, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, "", apperrors.ErrInvalidCredentials
	}

	account, err := s.accountFor(ctx, user.ID)
	if err != nil {
		return nil, nil, "", err
	}

	token, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, nil, "", err
	}
	return &user, account, token, nil
}

// Logout revokes the session.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.End(ctx, sessionID)
}

// CurrentUser returns the identity and account snapshot for a session user.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, *models.Account, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUnauthenticated
		}
		return nil, nil, err
	}
	account, err := s.accountFor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return &user, account, nil
}

// ListUsers returns the identity records visible to the caller, which is
// only their own.
func (s *AuthService) ListUsers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves one identity record. Foreign ids look nonexistent.
func (s *AuthService) GetUser(ctx context.Context, userID, id uuid.UUID) (*models.User, error) {
	if id != userID {
		return nil, apperrors.ErrNotFound
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SessionTTL returns the configured session lifetime, used for cookie
// expiry.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// ValidateToken implements the middleware's TokenValidator.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	return s.sessions.Validate(ctx, token)
}

func (s *AuthService) accountFor(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return &account, nil
}
