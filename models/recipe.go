package models

import "gorm.io/gorm"

// RecipeTemplate is a user-authored, reusable recipe definition. It is
// mutable: logging a meal from it freezes a snapshot (see MealIngredient),
// after which the template can keep drifting without touching history.
type RecipeTemplate struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`

	// UX hints seeded from the most recent logging. Not consulted by the
	// resolution math.
	LastCookedWeight *float64
	LastMealType     string

	Items []TemplateLineItem `gorm:"foreignKey:RecipeID"`
}

// TemplateLineItem is one ingredient row of a template. The per-unit
// coefficients are copied from the ingredient catalog when the row is
// created and never edited afterwards; changing the macros of a line
// means removing it and adding a fresh one.
type TemplateLineItem struct {
	gorm.Model
	RecipeID uint   `gorm:"index;not null"`
	FoodName string `gorm:"not null"`
	Quantity float64
	Unit     string
	Checked  bool `gorm:"default:true"`

	CaloriesPerUnit float64
	ProteinPerUnit  float64
	CarbsPerUnit    float64
	FatPerUnit      float64
	FiberPerUnit    float64

	IngredientID *uint // source catalog row, if any
}
