package models

import "time"

// User is an account. Username and email are unique across all users and the
// password is only ever stored as a bcrypt hash.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:150;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`

	Comments       []Comment       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeComments []RecipeComment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipes        []Recipe        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
