package services

import (
	"time"

	"backend/config"
	"backend/logger"
	"backend/models"

	"gorm.io/gorm"
)

type RecipeService struct{}

func NewRecipeService() *RecipeService {
	return &RecipeService{}
}

// IngredientOverride selects a template line for logging at a specific
// quantity. Lines without an override fall back to their own quantity.
type IngredientOverride struct {
	LineItemID uint    `json:"line_item_id"`
	Quantity   float64 `json:"quantity"`
}

// LogRequest carries everything needed to turn a template into a meal
// log entry.
type LogRequest struct {
	MealType          string               `json:"meal_type"`
	LoggedDate        time.Time            `json:"logged_date"`
	Overrides         []IngredientOverride `json:"ingredient_overrides"`
	TotalCookedWeight *float64             `json:"total_cooked_weight"`
	PortionWeight     *float64             `json:"portion_weight"`
}

// RecipeWithTotals pairs a template with its current-composition totals
// for list/detail views. Totals are unscaled (scale 1.0): "as currently
// composed", not "as last eaten".
type RecipeWithTotals struct {
	models.RecipeTemplate
	Totals    MacroTotals `json:"totals"`
	RawWeight float64     `json:"raw_weight"`
}

func (s *RecipeService) getRecipe(userID, recipeID uint, withItems bool) (*models.RecipeTemplate, error) {
	var recipe models.RecipeTemplate
	q := config.DB.Where("id = ? AND user_id = ?", recipeID, userID)
	if withItems {
		q = q.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		})
	}
	if err := q.First(&recipe).Error; err != nil {
		return nil, notFoundOr(err, "recipe")
	}
	return &recipe, nil
}

func (s *RecipeService) CreateTemplate(userID uint, name string) (*models.RecipeTemplate, error) {
	if name == "" {
		return nil, validationErrorf("recipe name is required")
	}
	recipe := models.RecipeTemplate{UserID: userID, Name: name}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) ListTemplates(userID uint) ([]RecipeWithTotals, error) {
	var recipes []models.RecipeTemplate
	err := config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecipeWithTotals, 0, len(recipes))
	for _, r := range recipes {
		totals, raw := Compute(PortionItemsFromLines(r.Items), nil, 0, 0)
		out = append(out, RecipeWithTotals{RecipeTemplate: r, Totals: totals, RawWeight: raw})
	}
	return out, nil
}

func (s *RecipeService) GetTemplate(userID, recipeID uint) (*RecipeWithTotals, error) {
	recipe, err := s.getRecipe(userID, recipeID, true)
	if err != nil {
		return nil, err
	}
	totals, raw := Compute(PortionItemsFromLines(recipe.Items), nil, 0, 0)
	return &RecipeWithTotals{RecipeTemplate: *recipe, Totals: totals, RawWeight: raw}, nil
}

// TemplateTotals resolves the template's current live composition with
// no overrides and no weight scaling.
func (s *RecipeService) TemplateTotals(userID, recipeID uint) (MacroTotals, float64, error) {
	recipe, err := s.getRecipe(userID, recipeID, true)
	if err != nil {
		return MacroTotals{}, 0, err
	}
	totals, raw := Compute(PortionItemsFromLines(recipe.Items), nil, 0, 0)
	return totals, raw, nil
}

func (s *RecipeService) RenameTemplate(userID, recipeID uint, name string) (*models.RecipeTemplate, error) {
	if name == "" {
		return nil, validationErrorf("recipe name is required")
	}
	recipe, err := s.getRecipe(userID, recipeID, true)
	if err != nil {
		return nil, err
	}
	recipe.Name = name
	if err := config.DB.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteTemplate removes a template and its line items. Meal log entries
// previously created from it keep their snapshots and stay valid.
func (s *RecipeService) DeleteTemplate(userID, recipeID uint) error {
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.TemplateLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

// AddLineItem copies the ingredient's per-100 facts into per-unit
// coefficients on a new line. The copy is deliberate: later edits to the
// catalog entry must not rewrite existing templates.
func (s *RecipeService) AddLineItem(userID, recipeID, ingredientID uint, quantity float64, unit string) (*models.TemplateLineItem, error) {
	if quantity <= 0 {
		return nil, validationErrorf("quantity must be greater than zero")
	}
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return nil, err
	}

	var ing models.Ingredient
	if err := config.DB.First(&ing, ingredientID).Error; err != nil {
		return nil, notFoundOr(err, "ingredient")
	}

	item := models.TemplateLineItem{
		RecipeID:        recipe.ID,
		FoodName:        ing.Name,
		Quantity:        quantity,
		Unit:            unit,
		Checked:         true,
		CaloriesPerUnit: ing.CaloriesPer100 / 100,
		ProteinPerUnit:  ing.ProteinPer100 / 100,
		CarbsPerUnit:    ing.CarbsPer100 / 100,
		FatPerUnit:      ing.FatPer100 / 100,
		FiberPerUnit:    ing.FiberPer100 / 100,
		IngredientID:    &ing.ID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RecipeService) getLineItem(recipeID, itemID uint) (*models.TemplateLineItem, error) {
	var item models.TemplateLineItem
	err := config.DB.Where("id = ? AND recipe_id = ?", itemID, recipeID).First(&item).Error
	if err != nil {
		return nil, notFoundOr(err, "line item")
	}
	return &item, nil
}

func (s *RecipeService) RemoveLineItem(userID, recipeID, itemID uint) error {
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return err
	}
	item, err := s.getLineItem(recipe.ID, itemID)
	if err != nil {
		return err
	}
	return config.DB.Delete(item).Error
}

func (s *RecipeService) SetLineItemQuantity(userID, recipeID, itemID uint, quantity float64) (*models.TemplateLineItem, error) {
	if quantity <= 0 {
		return nil, validationErrorf("quantity must be greater than zero")
	}
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return nil, err
	}
	item, err := s.getLineItem(recipe.ID, itemID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RecipeService) ToggleLineItemChecked(userID, recipeID, itemID uint) (*models.TemplateLineItem, error) {
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return nil, err
	}
	item, err := s.getLineItem(recipe.ID, itemID)
	if err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// LogFromTemplate resolves the template's current composition into an
// immutable meal log entry. The snapshot rows and the entry are written
// in one transaction so a recipe-linked meal is never observable without
// its snapshot. Syncing the template back to what was logged is a
// best-effort convenience afterwards.
func (s *RecipeService) LogFromTemplate(userID, recipeID uint, req LogRequest) (*models.MealLogEntry, error) {
	recipe, err := s.getRecipe(userID, recipeID, true)
	if err != nil {
		return nil, err
	}

	overrides := make(map[uint]float64, len(req.Overrides))
	for _, o := range req.Overrides {
		overrides[o.LineItemID] = o.Quantity
	}

	items := PortionItemsFromLines(recipe.Items)
	if QualifyingCount(items, overrides) == 0 {
		return nil, validationErrorf("no ingredients selected")
	}

	var cooked, portion float64
	if req.TotalCookedWeight != nil {
		cooked = *req.TotalCookedWeight
	}
	if req.PortionWeight != nil {
		portion = *req.PortionWeight
	}

	totals, rawWeight := Compute(items, overrides, cooked, portion)

	// Freeze the composition: only checked lines with a positive
	// effective quantity make it into the snapshot.
	snapshot := make([]models.MealIngredient, 0, len(recipe.Items))
	for _, line := range recipe.Items {
		if !line.Checked {
			continue
		}
		q := EffectiveQuantity(PortionItem{ID: line.ID, Quantity: line.Quantity}, overrides)
		if q <= 0 {
			continue
		}
		lineID := line.ID
		snapshot = append(snapshot, models.MealIngredient{
			LineItemID:      &lineID,
			FoodName:        line.FoodName,
			Quantity:        q,
			Unit:            line.Unit,
			CaloriesPerUnit: line.CaloriesPerUnit,
			ProteinPerUnit:  line.ProteinPerUnit,
			CarbsPerUnit:    line.CarbsPerUnit,
			FatPerUnit:      line.FatPerUnit,
			FiberPerUnit:    line.FiberPerUnit,
			IngredientID:    line.IngredientID,
		})
	}

	loggedDate := req.LoggedDate
	if loggedDate.IsZero() {
		loggedDate = time.Now()
	}
	portionWeight := req.PortionWeight
	if portionWeight == nil {
		portionWeight = req.TotalCookedWeight
	}

	meal := models.MealLogEntry{
		UserID:            userID,
		Name:              recipe.Name,
		MealType:          req.MealType,
		LoggedDate:        dateOnly(loggedDate),
		Calories:          totals.Calories,
		ProteinG:          totals.ProteinG,
		CarbsG:            totals.CarbsG,
		FatG:              totals.FatG,
		FiberG:            totals.FiberG,
		RecipeID:          &recipe.ID,
		RawWeight:         &rawWeight,
		TotalCookedWeight: req.TotalCookedWeight,
		PortionWeight:     portionWeight,
		Snapshot:          snapshot,
	}
	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&meal).Error
	}); err != nil {
		return nil, err
	}

	s.syncTemplateAfterLog(recipe, overrides, req)

	return &meal, nil
}

// syncTemplateAfterLog updates the live template to match what was just
// logged so the next logging starts from the last-used composition.
// Failures here are logged and swallowed: the meal and its snapshot are
// already committed and must not be rolled back for a convenience write.
func (s *RecipeService) syncTemplateAfterLog(recipe *models.RecipeTemplate, overrides map[uint]float64, req LogRequest) {
	for i := range recipe.Items {
		line := &recipe.Items[i]
		q := EffectiveQuantity(PortionItem{ID: line.ID, Quantity: line.Quantity}, overrides)
		participated := line.Checked && q > 0

		updates := map[string]interface{}{"checked": participated}
		if participated {
			updates["quantity"] = q
		}
		if err := config.DB.Model(&models.TemplateLineItem{}).
			Where("id = ?", line.ID).
			Updates(updates).Error; err != nil {
			logger.Warnw("template sync after log failed", "recipe_id", recipe.ID, "line_item_id", line.ID, "error", err)
		}
	}

	recipeUpdates := map[string]interface{}{"last_meal_type": req.MealType}
	if req.TotalCookedWeight != nil && *req.TotalCookedWeight > 0 {
		recipeUpdates["last_cooked_weight"] = *req.TotalCookedWeight
	}
	if err := config.DB.Model(&models.RecipeTemplate{}).
		Where("id = ?", recipe.ID).
		Updates(recipeUpdates).Error; err != nil {
		logger.Warnw("recipe hint update after log failed", "recipe_id", recipe.ID, "error", err)
	}
}

// RestoreFromLog overwrites the template's line items with fresh copies
// of the meal's frozen snapshot, so the template reads exactly as it was
// when that meal was cooked. Afterwards the two are independent again.
func (s *RecipeService) RestoreFromLog(userID, recipeID, mealID uint) (*RecipeWithTotals, error) {
	recipe, err := s.getRecipe(userID, recipeID, false)
	if err != nil {
		return nil, err
	}

	var meal models.MealLogEntry
	err = config.DB.
		Preload("Snapshot").
		Where("id = ? AND user_id = ? AND recipe_id = ?", mealID, userID, recipe.ID).
		First(&meal).Error
	if err != nil {
		return nil, notFoundOr(err, "meal")
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.TemplateLineItem{}).Error; err != nil {
			return err
		}
		for _, row := range meal.Snapshot {
			item := models.TemplateLineItem{
				RecipeID:        recipe.ID,
				FoodName:        row.FoodName,
				Quantity:        row.Quantity,
				Unit:            row.Unit,
				Checked:         true,
				CaloriesPerUnit: row.CaloriesPerUnit,
				ProteinPerUnit:  row.ProteinPerUnit,
				CarbsPerUnit:    row.CarbsPerUnit,
				FatPerUnit:      row.FatPerUnit,
				FiberPerUnit:    row.FiberPerUnit,
				IngredientID:    row.IngredientID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTemplate(userID, recipeID)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
