package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
	"gorm.io/gorm"
)

const maxTitleLength = 200

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe stores a recipe owned by userID together with its ingredient
// lines. The ingredient lists are aligned by position; a position where any of
// id, amount or unit is empty is skipped.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uint, req types.CreateRecipeRequest) (*models.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || blank(req.Instructions) {
		return nil, invalid("form", "title and instructions are required")
	}
	if tooLong(title, maxTitleLength) {
		return nil, invalid("title", "is too long")
	}

	lines, err := parseIngredientLines(req)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:        title,
		Instructions: req.Instructions,
		UserID:       userID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkIngredientsExist(tx, lines); err != nil {
			return err
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return persistence("create recipe", err)
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return persistence("create recipe ingredients", err)
		}
		recipe.Ingredients = lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

func parseIngredientLines(req types.CreateRecipeRequest) ([]models.RecipeIngredient, error) {
	n := max(len(req.IngredientIDs), len(req.Amounts), len(req.Units))
	lines := make([]models.RecipeIngredient, 0, n)

	for i := 0; i < n; i++ {
		rawID := strings.TrimSpace(at(req.IngredientIDs, i))
		rawAmount := strings.TrimSpace(at(req.Amounts, i))
		unit := strings.TrimSpace(at(req.Units, i))
		if rawID == "" || rawAmount == "" || unit == "" {
			continue
		}

		id, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil || id == 0 {
			return nil, invalid("ingredient_id", fmt.Sprintf("%q is not a valid ingredient", rawID))
		}
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, invalid("amount", fmt.Sprintf("%q is not a number", rawAmount))
		}
		if amount <= 0 {
			return nil, invalid("amount", "must be greater than zero")
		}
		if tooLong(unit, models.MaxUnitLength) {
			return nil, invalid("unit", fmt.Sprintf("must be at most %d characters", models.MaxUnitLength))
		}

		lines = append(lines, models.RecipeIngredient{
			IngredientID: uint(id),
			Amount:       amount,
			Unit:         unit,
		})
	}
	return lines, nil
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func checkIngredientsExist(tx *gorm.DB, lines []models.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.IngredientID)
	}

	var found []uint
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return persistence("check ingredients", err)
	}
	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	for _, id := range ids {
		if !known[id] {
			return invalid("ingredient_id", fmt.Sprintf("unknown ingredient %d", id))
		}
	}
	return nil
}

// ListRecipes returns every recipe with its author, oldest first
func (s *RecipeService) ListRecipes(ctx context.Context) ([]types.RecipeSummary, error) {
	var recipes []types.RecipeSummary
	err := s.db.WithContext(ctx).
		Table("recipes").
		Select("recipes.id, recipes.title, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.id").
		Scan(&recipes).Error
	if err != nil {
		return nil, persistence("list recipes", err)
	}
	return recipes, nil
}

// ListRecipeDetails returns every recipe with author and ingredient lines,
// oldest first. Comments are not loaded.
func (s *RecipeService) ListRecipeDetails(ctx context.Context) ([]types.RecipeDetail, error) {
	db := s.db.WithContext(ctx)

	var recipes []types.RecipeDetail
	err := db.Table("recipes").
		Select("recipes.id, recipes.title, recipes.instructions, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.id").
		Scan(&recipes).Error
	if err != nil {
		return nil, persistence("list recipes", err)
	}
	if len(recipes) == 0 {
		return []types.RecipeDetail{}, nil
	}

	var rows []ingredientRow
	err = db.Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id, ingredients.name, recipe_ingredients.amount, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Order("recipe_ingredients.id").
		Scan(&rows).Error
	if err != nil {
		return nil, persistence("list recipe ingredients", err)
	}

	byRecipe := make(map[uint][]types.IngredientLine)
	for _, r := range rows {
		byRecipe[r.RecipeID] = append(byRecipe[r.RecipeID], r.line())
	}
	for i := range recipes {
		recipes[i].Ingredients = nonNil(byRecipe[recipes[i].ID])
	}
	return recipes, nil
}

type ingredientRow struct {
	RecipeID uint
	Name     string
	Amount   float64
	Unit     string
}

func (r ingredientRow) line() types.IngredientLine {
	return types.IngredientLine{Name: r.Name, Amount: r.Amount, Unit: r.Unit}
}

func nonNil(lines []types.IngredientLine) []types.IngredientLine {
	if lines == nil {
		return []types.IngredientLine{}
	}
	return lines
}

// GetRecipe loads one recipe with author, ingredients in insertion order and
// comments oldest first
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*types.RecipeDetail, error) {
	db := s.db.WithContext(ctx)

	var recipes []types.RecipeDetail
	err := db.Table("recipes").
		Select("recipes.id, recipes.title, recipes.instructions, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.id = ?", id).
		Limit(1).
		Scan(&recipes).Error
	if err != nil {
		return nil, persistence("get recipe", err)
	}
	if len(recipes) == 0 {
		return nil, ErrRecipeNotFound
	}
	recipe := recipes[0]

	var rows []ingredientRow
	err = db.Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id, ingredients.name, recipe_ingredients.amount, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", id).
		Order("recipe_ingredients.id").
		Scan(&rows).Error
	if err != nil {
		return nil, persistence("get recipe ingredients", err)
	}
	recipe.Ingredients = make([]types.IngredientLine, 0, len(rows))
	for _, r := range rows {
		recipe.Ingredients = append(recipe.Ingredients, r.line())
	}

	err = db.Table("recipe_comments").
		Select("recipe_comments.id, recipe_comments.content, recipe_comments.created_at, users.username AS author").
		Joins("JOIN users ON users.id = recipe_comments.user_id").
		Where("recipe_comments.recipe_id = ?", id).
		Order("recipe_comments.id").
		Scan(&recipe.Comments).Error
	if err != nil {
		return nil, persistence("get recipe comments", err)
	}

	return &recipe, nil
}

// AddRecipeComment adds a comment by userID to an existing recipe
func (s *RecipeService) AddRecipeComment(ctx context.Context, userID, recipeID uint, content string) (*models.RecipeComment, error) {
	if blank(content) {
		return nil, invalid("content", "comment must not be empty")
	}
	if tooLong(content, models.MaxCommentLength) {
		return nil, invalid("content", "is too long")
	}

	db := s.db.WithContext(ctx)

	var recipe models.Recipe
	if err := db.Select("id").First(&recipe, recipeID).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, persistence("get recipe", err)
	}

	comment := models.RecipeComment{
		Content:  content,
		UserID:   userID,
		RecipeID: recipe.ID,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, persistence("create recipe comment", err)
	}
	return &comment, nil
}
