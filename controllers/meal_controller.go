package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// broadcastDay pushes the refreshed summary for a date to the user's
// open websocket connections. Best-effort: failures only get logged
// downstream, the HTTP response is already decided.
func broadcastDay(userID uint, day time.Time) {
	mealSvc := services.NewMealService()
	summary, err := mealSvc.GetDay(userID, day)
	if err != nil {
		return
	}
	services.Hub.BroadcastDaySummary(userID, summary)
}

func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func GetDay(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	mealSvc := services.NewMealService()
	summary, err := mealSvc.GetDay(currentUserID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func CreateMeal(c *gin.Context) {
	var input services.MealCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService()
	meal, err := mealSvc.CreateMeal(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastDay(userID, meal.LoggedDate)
	c.JSON(http.StatusCreated, meal)
}

func GetMeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	mealSvc := services.NewMealService()
	meal, err := mealSvc.GetMeal(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

type PortionInput struct {
	PortionWeight float64 `json:"portion_weight" binding:"required"`
}

func RevisePortion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input PortionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService()
	meal, err := mealSvc.RevisePortion(userID, id, input.PortionWeight)
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastDay(userID, meal.LoggedDate)
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	userID := currentUserID(c)
	mealSvc := services.NewMealService()
	meal, err := mealSvc.GetMeal(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := mealSvc.DeleteMeal(userID, id); err != nil {
		respondError(c, err)
		return
	}

	broadcastDay(userID, meal.LoggedDate)
	c.Status(http.StatusNoContent)
}

func MealHistory(c *gin.Context) {
	limit := 14
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	mealSvc := services.NewMealService()
	history, err := mealSvc.History(currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
