package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateRecipe(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeSvc := services.NewRecipeService()
	recipe, err := recipeSvc.CreateTemplate(currentUserID(c), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func ListRecipes(c *gin.Context) {
	recipeSvc := services.NewRecipeService()
	recipes, err := recipeSvc.ListTemplates(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func GetRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService()
	recipe, err := recipeSvc.GetTemplate(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func RecipeTotals(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService()
	totals, rawWeight, err := recipeSvc.TemplateTotals(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals, "raw_weight": rawWeight})
}

func RenameRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeSvc := services.NewRecipeService()
	recipe, err := recipeSvc.RenameTemplate(currentUserID(c), id, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService()
	if err := recipeSvc.DeleteTemplate(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type AddLineItemInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required"`
	Unit         string  `json:"unit"`
}

func AddLineItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input AddLineItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeSvc := services.NewRecipeService()
	item, err := recipeSvc.AddLineItem(currentUserID(c), id, input.IngredientID, input.Quantity, input.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateLineItem handles quantity edits and checked toggles; exactly one
// of the two fields is expected per request.
func UpdateLineItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemID")
	if !ok {
		return
	}
	var input struct {
		Quantity      *float64 `json:"quantity"`
		ToggleChecked bool     `json:"toggle_checked"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	recipeSvc := services.NewRecipeService()

	if input.Quantity != nil {
		item, err := recipeSvc.SetLineItemQuantity(userID, id, itemID, *input.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}
	if input.ToggleChecked {
		item, err := recipeSvc.ToggleLineItemChecked(userID, id, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
}

func RemoveLineItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemID")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService()
	if err := recipeSvc.RemoveLineItem(currentUserID(c), id, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func LogRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input services.LogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !services.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be one of Breakfast, Lunch, Dinner, Snack"})
		return
	}

	userID := currentUserID(c)
	recipeSvc := services.NewRecipeService()
	meal, err := recipeSvc.LogFromTemplate(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastDay(userID, meal.LoggedDate)
	c.JSON(http.StatusCreated, meal)
}

func RestoreRecipeFromMeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	mealID, ok := paramID(c, "mealID")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService()
	recipe, err := recipeSvc.RestoreFromLog(currentUserID(c), id, mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
