package types

// RegisterRequest is the registration form
type RegisterRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginRequest is the login form
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// CreateRecipeRequest is the add-recipe form. The three ingredient lists are
// aligned by position.
type CreateRecipeRequest struct {
	Title         string   `form:"title"`
	Instructions  string   `form:"instructions"`
	IngredientIDs []string `form:"ingredient_id"`
	Amounts       []string `form:"amount"`
	Units         []string `form:"unit"`
}

// FeedCommentRequest is the main feed comment form
type FeedCommentRequest struct {
	Contents string `form:"contents"`
}

// RecipeCommentRequest is the recipe comment form
type RecipeCommentRequest struct {
	Content string `form:"content"`
}
