package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/service"
)

// RecipeAPIHandler serves the read-only JSON API
type RecipeAPIHandler struct {
	recipes     service.IRecipeService
	ingredients service.IIngredientService
}

// NewRecipeAPIHandler creates a new RecipeAPIHandler
func NewRecipeAPIHandler(recipes service.IRecipeService, ingredients service.IIngredientService) *RecipeAPIHandler {
	return &RecipeAPIHandler{recipes: recipes, ingredients: ingredients}
}

// ListRecipes returns every recipe with author and ingredients
func (h *RecipeAPIHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipeDetails(c.Request.Context())
	if err != nil {
		jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// GetRecipe returns one recipe; unknown or malformed ids are 404
func (h *RecipeAPIHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if statusFromError(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ListIngredients returns the ingredient catalogue ordered by name
func (h *RecipeAPIHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.ListIngredients(c.Request.Context())
	if err != nil {
		jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
	})
}
