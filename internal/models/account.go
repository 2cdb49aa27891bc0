package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the per-user profile record, created in the same transaction as
// its User. The list columns are stored as JSON and replaced wholesale by the
// field-scoped update endpoints; their contents are not validated against any
// vocabulary.
type Account struct {
	ID                 uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	User               *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	DietaryPreferences StringList `gorm:"type:json;not null;default:'[]'" json:"dietary_preferences"`
	Allergies          StringList `gorm:"type:json;not null;default:'[]'" json:"allergies"`
	FridgeInventory    StringList `gorm:"type:json;not null;default:'[]'" json:"fridge_inventory"`
	SavedRecipes       StringList `gorm:"type:json;not null;default:'[]'" json:"saved_recipes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
