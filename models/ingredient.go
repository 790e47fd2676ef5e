package models

import "gorm.io/gorm"

// Ingredient is a catalog entry with nutrition facts per 100 units
// (grams or milliliters, depending on the food).
type Ingredient struct {
	gorm.Model
	Name           string `gorm:"not null;index"`
	CaloriesPer100 float64
	ProteinPer100  float64
	CarbsPer100    float64
	FatPer100      float64
	FiberPer100    float64
	UsdaFdcID      *int // set when imported from USDA FoodData Central
}
