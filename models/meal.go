package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLogEntry is one logged meal on a given date. Entries are either
// freeform (macros typed in directly) or derived from a recipe template,
// in which case RecipeID, Snapshot and the weight fields are set and the
// macro fields always equal the resolution engine's output for
// (Snapshot, TotalCookedWeight, PortionWeight).
type MealLogEntry struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	Name       string    `gorm:"not null"`
	MealType   string    `gorm:"not null"` // Breakfast|Lunch|Dinner|Snack
	LoggedDate time.Time `gorm:"index;not null"`

	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	FiberG   float64
	Notes    string

	RecipeID          *uint
	RawWeight         *float64 // sum of snapshotted ingredient quantities, unscaled
	TotalCookedWeight *float64
	PortionWeight     *float64

	Snapshot []MealIngredient `gorm:"foreignKey:MealID"`
}

// MealIngredient is one row of the composition snapshot frozen into a
// meal at logging time. Immutable after creation; deleted only with its
// owning meal. LineItemID points back at the template row it was copied
// from so restore-from-meal can rebuild the template.
type MealIngredient struct {
	gorm.Model
	MealID     uint `gorm:"index;not null"`
	LineItemID *uint
	FoodName   string `gorm:"not null"`
	Quantity   float64
	Unit       string

	CaloriesPerUnit float64
	ProteinPerUnit  float64
	CarbsPerUnit    float64
	FatPerUnit      float64
	FiberPerUnit    float64

	IngredientID *uint
}
