package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListDayTypes(c *gin.Context) {
	types, err := services.ListDayTypes(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func CreateDayType(c *gin.Context) {
	var input services.DayTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := services.CreateDayType(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dt)
}

func UpdateDayType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input services.DayTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := services.UpdateDayType(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dt)
}

func DeleteDayType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteDayType(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func SetDayLog(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	var input struct {
		DayTypeID uint `json:"day_type_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := services.SetDayLog(currentUserID(c), day, input.DayTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dt)
}

func ClearDayLog(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	if err := services.ClearDayLog(currentUserID(c), day); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
