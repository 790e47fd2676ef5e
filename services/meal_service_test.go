package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMealValidation(t *testing.T) {
	user := setupTestDB(t)
	svc := NewMealService()

	cases := []struct {
		name string
		req  MealCreateRequest
	}{
		{"missing name", MealCreateRequest{MealType: "Lunch", Calories: 100}},
		{"bad meal type", MealCreateRequest{Name: "Toast", MealType: "Brunch", Calories: 100}},
		{"negative calories", MealCreateRequest{Name: "Toast", MealType: "Lunch", Calories: -1}},
		{"negative protein", MealCreateRequest{Name: "Toast", MealType: "Lunch", ProteinG: -0.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateMeal(user.ID, tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}

	meal, err := svc.CreateMeal(user.ID, MealCreateRequest{
		Name:       "Toast",
		MealType:   "Breakfast",
		LoggedDate: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
		Calories:   220,
		ProteinG:   7.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 220, meal.Calories)
	assert.True(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).Equal(meal.LoggedDate), "logged date is normalized to midnight")
}

func TestRevisePortionUsesStoredSnapshotOnly(t *testing.T) {
	user := setupTestDB(t)
	recipe := seedRecipe(t, user.ID, []float64{200}, []float64{1.5})
	recipeSvc := NewRecipeService()
	mealSvc := NewMealService()

	meal, err := recipeSvc.LogFromTemplate(user.ID, recipe.ID, LogRequest{
		MealType:          "Dinner",
		TotalCookedWeight: f64(200),
		PortionWeight:     f64(200),
	})
	require.NoError(t, err)
	assert.Equal(t, 300, meal.Calories)

	// Corrupt the template so any accidental template read would show.
	_, err = recipeSvc.SetLineItemQuantity(user.ID, recipe.ID, recipe.Items[0].ID, 1)
	require.NoError(t, err)

	revised, err := mealSvc.RevisePortion(user.ID, meal.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 150, revised.Calories)
	require.NotNil(t, revised.PortionWeight)
	assert.Equal(t, 100.0, *revised.PortionWeight)
	require.NotNil(t, revised.TotalCookedWeight)
	assert.Equal(t, 200.0, *revised.TotalCookedWeight, "cooked weight never changes on revision")

	// Idempotent: same input, same output.
	again, err := mealSvc.RevisePortion(user.ID, meal.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, revised.Calories, again.Calories)
	assert.Equal(t, revised.ProteinG, again.ProteinG)
	assert.Equal(t, *revised.RawWeight, *again.RawWeight)
}

func TestRevisePortionRejectsBadInput(t *testing.T) {
	user := setupTestDB(t)
	recipe := seedRecipe(t, user.ID, []float64{100}, []float64{2})
	recipeSvc := NewRecipeService()
	mealSvc := NewMealService()

	meal, err := recipeSvc.LogFromTemplate(user.ID, recipe.ID, LogRequest{
		MealType:          "Lunch",
		TotalCookedWeight: f64(100),
	})
	require.NoError(t, err)

	_, err = mealSvc.RevisePortion(user.ID, meal.ID, 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	_, err = mealSvc.RevisePortion(user.ID, meal.ID, -50)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Entry left unchanged after rejected revisions.
	fresh, err := mealSvc.GetMeal(user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.Calories, fresh.Calories)
	assert.Equal(t, *meal.PortionWeight, *fresh.PortionWeight)

	// Freeform meals have no snapshot to re-scale.
	freeform, err := mealSvc.CreateMeal(user.ID, MealCreateRequest{
		Name: "Banana", MealType: "Snack", Calories: 90,
	})
	require.NoError(t, err)
	_, err = mealSvc.RevisePortion(user.ID, freeform.ID, 50)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRevisePortionUnknownMeal(t *testing.T) {
	user := setupTestDB(t)
	mealSvc := NewMealService()

	_, err := mealSvc.RevisePortion(user.ID, 12345, 100)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetDaySummarizesAndColorsChannels(t *testing.T) {
	user := setupTestDB(t)
	mealSvc := NewMealService()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, m := range []MealCreateRequest{
		{Name: "Eggs", MealType: "Breakfast", LoggedDate: day, Calories: 300, ProteinG: 20},
		{Name: "Chicken Bowl", MealType: "Lunch", LoggedDate: day, Calories: 700, ProteinG: 45},
		{Name: "Yesterday", MealType: "Dinner", LoggedDate: day.AddDate(0, 0, -1), Calories: 9999},
	} {
		_, err := mealSvc.CreateMeal(user.ID, m)
		require.NoError(t, err)
	}

	dt, err := CreateDayType(user.ID, DayTypeInput{
		Name:        "Training",
		CaloriesMin: 2000, CaloriesMax: 2600,
		ProteinMin: 50, ProteinMax: 200,
	})
	require.NoError(t, err)
	_, err = SetDayLog(user.ID, day, dt.ID)
	require.NoError(t, err)

	summary, err := mealSvc.GetDay(user.ID, day)
	require.NoError(t, err)

	assert.Len(t, summary.Meals, 2, "other days are excluded")
	assert.Equal(t, 1000, summary.TotalCalories)
	assert.Equal(t, 65.0, summary.TotalProtein)
	require.NotNil(t, summary.DayType)
	assert.Equal(t, "below", summary.Channels["calories"].Status)
	assert.Equal(t, "within", summary.Channels["protein"].Status)

	// No range assigned → no channel statuses.
	empty, err := mealSvc.GetDay(user.ID, day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Nil(t, empty.DayType)
	assert.Nil(t, empty.Channels)
}

func TestDeleteMealRemovesSnapshotLeavesTemplate(t *testing.T) {
	user := setupTestDB(t)
	recipe := seedRecipe(t, user.ID, []float64{150}, []float64{1})
	recipeSvc := NewRecipeService()
	mealSvc := NewMealService()

	meal, err := recipeSvc.LogFromTemplate(user.ID, recipe.ID, LogRequest{MealType: "Dinner"})
	require.NoError(t, err)

	require.NoError(t, mealSvc.DeleteMeal(user.ID, meal.ID))

	_, err = mealSvc.GetMeal(user.ID, meal.ID)
	assert.True(t, IsNotFound(err))
	var count int64
	config.DB.Model(&models.MealIngredient{}).Where("meal_id = ?", meal.ID).Count(&count)
	assert.Zero(t, count)

	tmpl, err := recipeSvc.GetTemplate(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Len(t, tmpl.Items, 1)
}

func TestHistoryAggregatesPerDate(t *testing.T) {
	user := setupTestDB(t)
	mealSvc := NewMealService()
	day1 := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, m := range []MealCreateRequest{
		{Name: "A", MealType: "Breakfast", LoggedDate: day1, Calories: 400, ProteinG: 10},
		{Name: "B", MealType: "Dinner", LoggedDate: day1, Calories: 600, ProteinG: 30},
		{Name: "C", MealType: "Lunch", LoggedDate: day2, Calories: 500, ProteinG: 25},
	} {
		_, err := mealSvc.CreateMeal(user.ID, m)
		require.NoError(t, err)
	}

	history, err := mealSvc.History(user.ID, 14)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.True(t, day2.Equal(history[0].Date), "newest first")
	assert.Equal(t, 500, history[0].Calories)
	assert.True(t, day1.Equal(history[1].Date))
	assert.Equal(t, 1000, history[1].Calories)
	assert.Equal(t, 40.0, history[1].ProteinG)

	limited, err := mealSvc.History(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.True(t, day2.Equal(limited[0].Date))
}
