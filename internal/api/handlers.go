package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/session"
)

// Dependencies are the collaborators shared by all handlers
type Dependencies struct {
	Auth        service.IAuthService
	Comments    service.ICommentService
	Recipes     service.IRecipeService
	Ingredients service.IIngredientService
	Sessions    *session.Manager

	// HealthCheck pings the database
	HealthCheck func(ctx context.Context) error

	// Optional; a nil limiter lets every request through
	AuthLimiter   *middleware.RateLimiter
	RecipeLimiter *middleware.RateLimiter

	CORSAllowedOrigins []string
}

// RegisterRoutes registers the page routes and the JSON API on router. The
// router must have the page templates loaded.
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	authLimit := limit(deps.AuthLimiter)
	recipeLimit := limit(deps.RecipeLimiter)

	// Health check endpoint (no auth required)
	health := NewHealthHandler(deps.HealthCheck)
	router.GET("/health", health.Check)

	authHandler := NewAuthHandler(deps.Auth, deps.Sessions)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authLimit, authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authLimit, authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	pages := router.Group("")
	pages.Use(middleware.RequireSession(deps.Sessions, deps.Auth))
	{
		feed := NewFeedHandler(deps.Comments)
		pages.GET("/", feed.Show)
		pages.POST("/", feed.Post)

		pages.POST("/delete_user/:username", authHandler.DeleteUser)

		recipes := NewRecipeHandler(deps.Recipes, deps.Ingredients)
		pages.GET("/add_recipe", recipes.ShowAddRecipe)
		pages.POST("/add_recipe", recipeLimit, recipes.AddRecipe)
		pages.GET("/recipes", recipes.ListRecipes)
		pages.GET("/recipe/:id", recipes.ViewRecipe)
		pages.POST("/recipe/:id/comment", recipes.AddComment)
	}

	v1 := router.Group("/api")
	v1.Use(middleware.CORS(deps.CORSAllowedOrigins))
	{
		v1.GET("/health", health.Check)

		recipeAPI := NewRecipeAPIHandler(deps.Recipes, deps.Ingredients)
		v1.GET("/recipes", recipeAPI.ListRecipes)
		v1.GET("/recipes/:id", recipeAPI.GetRecipe)
		v1.GET("/ingredients", recipeAPI.ListIngredients)
	}
}

func limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.Middleware()
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
