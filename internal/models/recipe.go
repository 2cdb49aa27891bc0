package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeIngredient is one measured entry in a recipe's ingredient list. The
// values inside are not validated against the pantry enums.
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeIngredientList is a JSON-encoded ordered list of recipe ingredients.
type RecipeIngredientList []RecipeIngredient

// Value implements the driver.Valuer interface.
func (l RecipeIngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (l *RecipeIngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = RecipeIngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RecipeIngredientList", value)
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is a saved recipe owned by a user. Timestamps are server-assigned;
// listings default to newest first.
type Recipe struct {
	ID          uuid.UUID            `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID            `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string               `gorm:"size:200;not null" json:"title"`
	Ingredients RecipeIngredientList `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Steps       StringList           `gorm:"type:json;not null;default:'[]'" json:"steps"`
	Favorite    bool                 `gorm:"not null;default:false" json:"favorite"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
