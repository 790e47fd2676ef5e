package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/profile", controllers.GetProfile)
		authed.PATCH("/profile", controllers.UpdateProfile)

		authed.GET("/ingredients", controllers.ListIngredients)
		authed.POST("/ingredients", controllers.CreateIngredient)
		authed.PATCH("/ingredients/:id", controllers.UpdateIngredient)
		authed.DELETE("/ingredients/:id", controllers.DeleteIngredient)

		authed.GET("/usda/search", controllers.SearchUsdaFoods)

		authed.POST("/recipes", controllers.CreateRecipe)
		authed.GET("/recipes", controllers.ListRecipes)
		authed.GET("/recipes/:id", controllers.GetRecipe)
		authed.GET("/recipes/:id/totals", controllers.RecipeTotals)
		authed.PATCH("/recipes/:id", controllers.RenameRecipe)
		authed.DELETE("/recipes/:id", controllers.DeleteRecipe)
		authed.POST("/recipes/:id/ingredients", controllers.AddLineItem)
		authed.PATCH("/recipes/:id/ingredients/:itemID", controllers.UpdateLineItem)
		authed.DELETE("/recipes/:id/ingredients/:itemID", controllers.RemoveLineItem)
		authed.POST("/recipes/:id/log", controllers.LogRecipe)
		authed.POST("/recipes/:id/restore-from-meal/:mealID", controllers.RestoreRecipeFromMeal)

		authed.GET("/meals/day/:date", controllers.GetDay)
		authed.GET("/meals/history", controllers.MealHistory)
		authed.POST("/meals", controllers.CreateMeal)
		authed.GET("/meals/:id", controllers.GetMeal)
		authed.PATCH("/meals/:id/portion", controllers.RevisePortion)
		authed.DELETE("/meals/:id", controllers.DeleteMeal)

		authed.GET("/day-types", controllers.ListDayTypes)
		authed.POST("/day-types", controllers.CreateDayType)
		authed.PATCH("/day-types/:id", controllers.UpdateDayType)
		authed.DELETE("/day-types/:id", controllers.DeleteDayType)
		authed.PUT("/day-types/log/:date", controllers.SetDayLog)
		authed.DELETE("/day-types/log/:date", controllers.ClearDayLog)

		authed.GET("/ws", controllers.DaySummaryWS)
	}

	return r
}
