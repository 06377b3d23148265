package service

import (
	"context"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
)

// IAuthService defines the interface for account operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteUser(ctx context.Context, actor *models.User, username string) error
}

// ICommentService defines the interface for main feed operations
type ICommentService interface {
	ListComments(ctx context.Context) ([]types.FeedComment, error)
	CreateComment(ctx context.Context, userID uint, content string) (*models.Comment, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, userID uint, req types.CreateRecipeRequest) (*models.Recipe, error)
	ListRecipes(ctx context.Context) ([]types.RecipeSummary, error)
	ListRecipeDetails(ctx context.Context) ([]types.RecipeDetail, error)
	GetRecipe(ctx context.Context, id uint) (*types.RecipeDetail, error)
	AddRecipeComment(ctx context.Context, userID, recipeID uint, content string) (*models.RecipeComment, error)
}

// IIngredientService defines the interface for the ingredient catalogue
type IIngredientService interface {
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	EnsureIngredients(ctx context.Context, names []string) (int64, error)
}

var (
	_ IAuthService       = (*AuthService)(nil)
	_ ICommentService    = (*CommentService)(nil)
	_ IRecipeService     = (*RecipeService)(nil)
	_ IIngredientService = (*IngredientService)(nil)
)
