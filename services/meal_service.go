// services/meal_service.go
package services

import (
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// MealCreateRequest is a freeform meal entry: the user types the macros
// in directly, no recipe involved.
type MealCreateRequest struct {
	Name       string    `json:"name"`
	MealType   string    `json:"meal_type"`
	LoggedDate time.Time `json:"logged_date"`
	Calories   int       `json:"calories"`
	ProteinG   float64   `json:"protein_g"`
	CarbsG     float64   `json:"carbs_g"`
	FatG       float64   `json:"fat_g"`
	FiberG     float64   `json:"fiber_g"`
	Notes      string    `json:"notes"`
}

// ChannelStatus locates a day's total relative to the assigned day
// type's range for one macro channel.
type ChannelStatus struct {
	Consumed float64 `json:"consumed"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Status   string  `json:"status"` // below|within|above
}

type DailySummary struct {
	Date          time.Time                `json:"date"`
	TotalCalories int                      `json:"total_calories"`
	TotalProtein  float64                  `json:"total_protein"`
	TotalCarbs    float64                  `json:"total_carbs"`
	TotalFat      float64                  `json:"total_fat"`
	TotalFiber    float64                  `json:"total_fiber"`
	Meals         []models.MealLogEntry    `json:"meals"`
	DayType       *models.DayType          `json:"day_type,omitempty"`
	Channels      map[string]ChannelStatus `json:"channels,omitempty"`
}

type DayHistory struct {
	Date     time.Time `json:"date"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	FiberG   float64   `json:"fiber_g"`
}

var mealTypes = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
	"Snack":     true,
}

func ValidMealType(t string) bool { return mealTypes[t] }

func (s *MealService) CreateMeal(userID uint, req MealCreateRequest) (*models.MealLogEntry, error) {
	if req.Name == "" {
		return nil, validationErrorf("meal name is required")
	}
	if !ValidMealType(req.MealType) {
		return nil, validationErrorf("meal_type must be one of Breakfast, Lunch, Dinner, Snack")
	}
	if req.Calories < 0 || req.ProteinG < 0 || req.CarbsG < 0 || req.FatG < 0 || req.FiberG < 0 {
		return nil, validationErrorf("macro values must not be negative")
	}
	loggedDate := req.LoggedDate
	if loggedDate.IsZero() {
		loggedDate = time.Now()
	}

	meal := models.MealLogEntry{
		UserID:     userID,
		Name:       req.Name,
		MealType:   req.MealType,
		LoggedDate: dateOnly(loggedDate),
		Calories:   req.Calories,
		ProteinG:   req.ProteinG,
		CarbsG:     req.CarbsG,
		FatG:       req.FatG,
		FiberG:     req.FiberG,
		Notes:      req.Notes,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.MealLogEntry, error) {
	var meal models.MealLogEntry
	err := config.DB.
		Preload("Snapshot").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, notFoundOr(err, "meal")
	}
	return &meal, nil
}

// RevisePortion re-scales an existing entry to a new consumed weight.
// It recomputes from the entry's own frozen snapshot, never from the
// live template, so edits to the template since logging cannot leak
// into history.
func (s *MealService) RevisePortion(userID, mealID uint, newPortionWeight float64) (*models.MealLogEntry, error) {
	if newPortionWeight <= 0 {
		return nil, validationErrorf("portion weight must be greater than zero")
	}

	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	if meal.RecipeID == nil || len(meal.Snapshot) == 0 {
		return nil, validationErrorf("meal was not logged from a recipe")
	}

	var cooked float64
	if meal.TotalCookedWeight != nil {
		cooked = *meal.TotalCookedWeight
	}
	totals, rawWeight := Compute(PortionItemsFromSnapshot(meal.Snapshot), nil, cooked, newPortionWeight)

	meal.Calories = totals.Calories
	meal.ProteinG = totals.ProteinG
	meal.CarbsG = totals.CarbsG
	meal.FatG = totals.FatG
	meal.FiberG = totals.FiberG
	meal.RawWeight = &rawWeight
	meal.PortionWeight = &newPortionWeight

	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// DeleteMeal removes an entry together with its snapshot rows. The
// originating template, if it still exists, is untouched.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(meal).Error
	})
}

// GetDay assembles the day view: the date's entries, their totals, and
// when a day type is assigned, each channel's position in its range.
func (s *MealService) GetDay(userID uint, day time.Time) (*DailySummary, error) {
	day = dateOnly(day)
	var meals []models.MealLogEntry
	err := config.DB.
		Preload("Snapshot").
		Where("user_id = ? AND logged_date = ?", userID, day).
		Order("created_at").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	summary := DailySummary{Date: day, Meals: meals}
	for _, m := range meals {
		summary.TotalCalories += m.Calories
		summary.TotalProtein += m.ProteinG
		summary.TotalCarbs += m.CarbsG
		summary.TotalFat += m.FatG
		summary.TotalFiber += m.FiberG
	}

	dayType, err := DayTypeForDate(userID, day)
	if err != nil {
		return nil, err
	}
	if dayType != nil {
		summary.DayType = dayType
		summary.Channels = map[string]ChannelStatus{
			"calories": channelStatus(float64(summary.TotalCalories), dayType.CaloriesMin, dayType.CaloriesMax),
			"protein":  channelStatus(summary.TotalProtein, dayType.ProteinMin, dayType.ProteinMax),
			"carbs":    channelStatus(summary.TotalCarbs, dayType.CarbsMin, dayType.CarbsMax),
			"fat":      channelStatus(summary.TotalFat, dayType.FatMin, dayType.FatMax),
			"fiber":    channelStatus(summary.TotalFiber, dayType.FiberMin, dayType.FiberMax),
		}
	}
	return &summary, nil
}

func channelStatus(consumed, min, max float64) ChannelStatus {
	st := "within"
	switch {
	case consumed < min:
		st = "below"
	case max > 0 && consumed > max:
		st = "above"
	}
	return ChannelStatus{Consumed: consumed, Min: min, Max: max, Status: st}
}

// History aggregates totals per logged date, newest first.
func (s *MealService) History(userID uint, limit int) ([]DayHistory, error) {
	if limit <= 0 {
		limit = 14
	}
	var meals []models.MealLogEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	out := make([]DayHistory, 0, limit)
	for _, m := range meals {
		if len(out) > 0 && out[len(out)-1].Date.Equal(m.LoggedDate) {
			last := &out[len(out)-1]
			last.Calories += m.Calories
			last.ProteinG += m.ProteinG
			last.CarbsG += m.CarbsG
			last.FatG += m.FatG
			last.FiberG += m.FiberG
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, DayHistory{
			Date:     m.LoggedDate,
			Calories: m.Calories,
			ProteinG: m.ProteinG,
			CarbsG:   m.CarbsG,
			FatG:     m.FatG,
			FiberG:   m.FiberG,
		})
	}
	return out, nil
}
