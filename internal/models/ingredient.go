package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient categories. Stored as the short code.
var Categories = []string{
	"VEG",     // Vegetable
	"FRUIT",   // Fruit
	"LEGUME",  // Legumes & Beans
	"MUSH",    // Mushroom
	"GRAIN",   // Grains & Cereals
	"BAKED",   // Baked Goods
	"PORK",    // Pork
	"CHICKEN", // Chicken
	"BEEF",    // Beef
	"SEAFOOD", // Seafood
	"EGG",     // Eggs
	"MEAT",    // Other Meat
	"DAIRY",   // Dairy
	"H&S",     // Herbs & Spices
	"COND",    // Condiments & Sauces
	"BEV",     // Beverages
	"ALCO",    // Alcohol
	"OTHER",   // Other
}

// Measurement units for ingredient quantities.
var Units = []string{
	"g", "kg", "oz", "lb",
	"ml", "l", "tsp", "tbsp", "cup",
	"pc", "bunch", "slice", "pack", "bottle", "can",
}

// IsValidCategory reports whether code is a known category code.
func IsValidCategory(code string) bool {
	for _, c := range Categories {
		if c == code {
			return true
		}
	}
	return false
}

// IsValidUnit reports whether code is a known unit code.
func IsValidUnit(code string) bool {
	for _, u := range Units {
		if u == code {
			return true
		}
	}
	return false
}

// Ingredient is a single pantry item owned by a user. Listings default to
// expiration date ascending.
type Ingredient struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	IconName       string    `gorm:"size:100" json:"icon_name"`
	Category       string    `gorm:"size:20;not null" json:"category"`
	ExpirationDate Date      `gorm:"not null;index" json:"expiration_date"`
	Quantity       float64   `gorm:"not null" json:"quantity"`
	Unit           string    `gorm:"size:20;not null" json:"unit"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
