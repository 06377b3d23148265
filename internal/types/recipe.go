package types

import "time"

// IngredientLine is one ingredient of a recipe as shown to readers
type IngredientLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeCommentView is a recipe comment together with its author
type RecipeCommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeSummary is a recipe in a listing
type RecipeSummary struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"user"`
}

// RecipeDetail is a fully populated recipe: author, ingredients in insertion
// order and comments oldest first
type RecipeDetail struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Instructions string              `json:"instructions"`
	Author       string              `json:"user"`
	Ingredients  []IngredientLine    `gorm:"-" json:"ingredients"`
	Comments     []RecipeCommentView `gorm:"-" json:"-"`
}

// FeedComment is a main feed comment together with its author
type FeedComment struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
