package models

import "time"

// Recipe is owned by the user who created it.
type Recipe struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments    []RecipeComment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Ingredient names are unique.
type Ingredient struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	Usages []RecipeIngredient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// RecipeIngredient is the join row between a recipe and an ingredient,
// carrying the amount and unit used.
type RecipeIngredient struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;index" json:"ingredient_id"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Unit         string  `gorm:"size:50;not null" json:"unit"`
}

// MaxUnitLength is the column size of RecipeIngredient.Unit.
const MaxUnitLength = 50

// UnitSuggestions are the units offered by the add-recipe form. Any other
// non-empty unit is accepted as well.
var UnitSuggestions = []string{"Stück", "Gramm", "Kilogramm", "Löffel", "Teelöffel", "Prise", "Liter", "dl", "ml"}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Comment{},
		&Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&RecipeComment{},
	}
}
