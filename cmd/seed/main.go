// Seeds a development database with a demo user, a stocked pantry and a few
// saved recipes.
package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/database"
	"github.com/fridgechef/backend/internal/models"
)

const (
	seedUsername = "demo"
	seedPassword = "demo-password"
	pantrySize   = 40
	recipeCount  = 12
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	gofakeit.Seed(0)

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash seed password", zap.Error(err))
	}

	user := models.User{
		Username:     seedUsername,
		Email:        "demo@example.com",
		PasswordHash: string(hashed),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
	}
	if err := db.Where("username = ?", seedUsername).FirstOrCreate(&user).Error; err != nil {
		logger.Fatal("failed to create seed user", zap.Error(err))
	}

	account := models.Account{
		UserID:             user.ID,
		DietaryPreferences: models.StringList{"vegetarian"},
		Allergies:          models.StringList{"peanuts"},
		FridgeInventory:    models.StringList{},
		SavedRecipes:       models.StringList{},
	}
	if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&account).Error; err != nil {
		logger.Fatal("failed to create seed account", zap.Error(err))
	}

	for i := 0; i < pantrySize; i++ {
		// Spread expirations across all four freshness buckets.
		offset := gofakeit.Number(-5, 20)
		ingredient := models.Ingredient{
			UserID:         user.ID,
			Name:           gofakeit.Vegetable(),
			Category:       gofakeit.RandomString(models.Categories),
			ExpirationDate: models.NewDate(time.Now().AddDate(0, 0, offset)),
			Quantity:       float64(gofakeit.Number(1, 10)),
			Unit:           gofakeit.RandomString(models.Units),
		}
		if err := db.Create(&ingredient).Error; err != nil {
			logger.Fatal("failed to create seed ingredient", zap.Error(err))
		}
	}

	for i := 0; i < recipeCount; i++ {
		recipe := models.Recipe{
			UserID: user.ID,
			Title:  fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.Dinner()),
			Ingredients: models.RecipeIngredientList{
				{Name: gofakeit.Vegetable(), Quantity: 2, Unit: "cup"},
				{Name: gofakeit.Fruit(), Quantity: 1, Unit: "pc"},
			},
			Steps: models.StringList{
				"Prep the ingredients.",
				"Cook until done.",
				"Serve.",
			},
			Favorite: i%3 == 0,
		}
		if err := db.Create(&recipe).Error; err != nil {
			logger.Fatal("failed to create seed recipe", zap.Error(err))
		}
	}

	logger.Info("seed complete",
		zap.String("username", seedUsername),
		zap.Int("ingredients", pantrySize),
		zap.Int("recipes", recipeCount),
	)
}
