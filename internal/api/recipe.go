package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

// ingredientRows is how many ingredient lines the add-recipe form offers
const ingredientRows = 8

// RecipeHandler serves the recipe pages
type RecipeHandler struct {
	recipes     service.IRecipeService
	ingredients service.IIngredientService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipes service.IRecipeService, ingredients service.IIngredientService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, ingredients: ingredients}
}

// ShowAddRecipe renders the add-recipe form with the ingredient catalogue
func (h *RecipeHandler) ShowAddRecipe(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	ingredients, err := h.ingredients.ListIngredients(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "add_recipe.html", gin.H{
		"Username":    user.Username,
		"Ingredients": ingredients,
		"Units":       models.UnitSuggestions,
		"Rows":        make([]struct{}, ingredientRows),
	})
}

// AddRecipe creates a recipe and redirects to its page
func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req types.CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), user.ID, req)
	if err != nil {
		pageError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Uint("recipe_id", recipe.ID).
		Int("ingredients", len(recipe.Ingredients)).
		Msg("recipe created")
	redirect(c, fmt.Sprintf("/recipe/%d", recipe.ID))
}

// ListRecipes renders all recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "recipes.html", gin.H{
		"Username": user.Username,
		"Recipes":  recipes,
	})
}

// ViewRecipe renders one recipe with its ingredients and comments
func (h *RecipeHandler) ViewRecipe(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		pageError(c, service.ErrRecipeNotFound)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "recipe_detail.html", gin.H{
		"Username": user.Username,
		"Recipe":   recipe,
	})
}

// AddComment adds a comment to a recipe
func (h *RecipeHandler) AddComment(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		pageError(c, service.ErrRecipeNotFound)
		return
	}

	var req types.RecipeCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	if _, err := h.recipes.AddRecipeComment(c.Request.Context(), user.ID, id, req.Content); err != nil {
		pageError(c, err)
		return
	}
	redirect(c, fmt.Sprintf("/recipe/%d", id))
}
