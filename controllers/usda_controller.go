package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func SearchUsdaFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'query' query param"})
		return
	}

	usda := services.NewUsdaService()
	results, err := usda.Search(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
