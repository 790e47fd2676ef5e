package services

import (
	"backend/config"
	"backend/models"
)

// The ingredient catalog is shared plumbing: plain CRUD, no resolution
// logic. Per-unit coefficients are copied out of it when a line item is
// created, so edits here never rewrite existing templates or snapshots.

type IngredientInput struct {
	Name           string  `json:"name"`
	CaloriesPer100 float64 `json:"calories_per_100"`
	ProteinPer100  float64 `json:"protein_per_100"`
	CarbsPer100    float64 `json:"carbs_per_100"`
	FatPer100      float64 `json:"fat_per_100"`
	FiberPer100    float64 `json:"fiber_per_100"`
	UsdaFdcID      *int    `json:"usda_fdc_id"`
}

func (in IngredientInput) validate() error {
	if in.Name == "" {
		return validationErrorf("ingredient name is required")
	}
	if in.CaloriesPer100 < 0 || in.ProteinPer100 < 0 || in.CarbsPer100 < 0 ||
		in.FatPer100 < 0 || in.FiberPer100 < 0 {
		return validationErrorf("nutrition values must not be negative")
	}
	return nil
}

func ListIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := config.DB.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func GetIngredient(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := config.DB.First(&ing, id).Error; err != nil {
		return nil, notFoundOr(err, "ingredient")
	}
	return &ing, nil
}

func CreateIngredient(in IngredientInput) (*models.Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ing := models.Ingredient{
		Name:           in.Name,
		CaloriesPer100: in.CaloriesPer100,
		ProteinPer100:  in.ProteinPer100,
		CarbsPer100:    in.CarbsPer100,
		FatPer100:      in.FatPer100,
		FiberPer100:    in.FiberPer100,
		UsdaFdcID:      in.UsdaFdcID,
	}
	if err := config.DB.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func UpdateIngredient(id uint, in IngredientInput) (*models.Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ing, err := GetIngredient(id)
	if err != nil {
		return nil, err
	}
	ing.Name = in.Name
	ing.CaloriesPer100 = in.CaloriesPer100
	ing.ProteinPer100 = in.ProteinPer100
	ing.CarbsPer100 = in.CarbsPer100
	ing.FatPer100 = in.FatPer100
	ing.FiberPer100 = in.FiberPer100
	if in.UsdaFdcID != nil {
		ing.UsdaFdcID = in.UsdaFdcID
	}
	if err := config.DB.Save(ing).Error; err != nil {
		return nil, err
	}
	return ing, nil
}

func DeleteIngredient(id uint) error {
	ing, err := GetIngredient(id)
	if err != nil {
		return err
	}
	return config.DB.Delete(ing).Error
}
