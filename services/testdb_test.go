package services

import (
	"fmt"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database and
// returns a user to hang fixtures off.
func setupTestDB(t *testing.T) *models.User {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.RecipeTemplate{},
		&models.TemplateLineItem{},
		&models.MealLogEntry{},
		&models.MealIngredient{},
		&models.DayType{},
		&models.DayLog{},
	))
	config.DB = db

	user := models.User{Email: t.Name() + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedRecipe creates a template with line items at the given quantities
// and kcal/unit coefficients, all checked.
func seedRecipe(t *testing.T, userID uint, quantities, calsPerUnit []float64) *models.RecipeTemplate {
	t.Helper()

	recipe := models.RecipeTemplate{UserID: userID, Name: "Test Recipe"}
	require.NoError(t, config.DB.Create(&recipe).Error)

	for i := range quantities {
		line := models.TemplateLineItem{
			RecipeID:        recipe.ID,
			FoodName:        fmt.Sprintf("Food %d", i+1),
			Quantity:        quantities[i],
			Unit:            "g",
			Checked:         true,
			CaloriesPerUnit: calsPerUnit[i],
			ProteinPerUnit:  calsPerUnit[i] / 10,
			CarbsPerUnit:    calsPerUnit[i] / 10,
			FatPerUnit:      calsPerUnit[i] / 10,
			FiberPerUnit:    calsPerUnit[i] / 10,
		}
		require.NoError(t, config.DB.Create(&line).Error)
	}

	var full models.RecipeTemplate
	require.NoError(t, config.DB.Preload("Items").First(&full, recipe.ID).Error)
	return &full
}

func f64(v float64) *float64 { return &v }
