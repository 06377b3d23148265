package models

import "time"

// MaxCommentLength is the column size of every comment body.
const MaxCommentLength = 4096

// Comment is a general comment on the main feed.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `gorm:"size:4096" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
}

// RecipeComment is a comment attached to a single recipe.
type RecipeComment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"size:4096;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
