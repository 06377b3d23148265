package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxUsernameLength = 100
	maxEmailLength    = 150
	// bcrypt only accepts passwords up to 72 bytes
	maxPasswordBytes = 72
)

// AuthService handles accounts: registration, credential checks and deletion
type AuthService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:         db,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithBcryptCost overrides the hashing cost; tests use bcrypt.MinCost
func (s *AuthService) WithBcryptCost(cost int) *AuthService {
	s.bcryptCost = cost
	return s
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, invalid("form", "all fields are required")
	}
	if tooLong(username, maxUsernameLength) {
		return nil, invalid("username", "is too long")
	}
	if tooLong(email, maxEmailLength) || !IsValidEmail(email) {
		return nil, invalid("email", "is not a valid email address")
	}
	if len(password) > maxPasswordBytes {
		return nil, invalid("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}

	db := s.db.WithContext(ctx)

	// Check if username or email is already taken
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, persistence("check username", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, persistence("check email", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(&user).Error; err != nil {
		// A concurrent registration can win the race between check and insert
		if database.IsUniqueViolation(err) {
			return nil, s.conflictFor(ctx, username)
		}
		return nil, persistence("create user", err)
	}

	return &user, nil
}

// conflictFor tells which unique column a failed insert collided on
func (s *AuthService) conflictFor(ctx context.Context, username string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err == nil && count > 0 {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// Login checks the credentials. Unknown users and wrong passwords produce the
// same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, persistence("get user", err)
	}
	return &user, nil
}

// DeleteUser removes the account named username together with everything it
// owns: feed comments, recipe comments, and recipes with their ingredient rows
// and comments. Only the account itself may do this.
func (s *AuthService) DeleteUser(ctx context.Context, actor *models.User, username string) error {
	if actor == nil || actor.Username != username {
		return ErrForbiddenUserDeletion
	}

	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipeIDs := func() *gorm.DB {
			return tx.Model(&models.Recipe{}).Select("id").Where("user_id = ?", user.ID)
		}

		if err := tx.Where("recipe_id IN (?) OR user_id = ?", recipeIDs(), user.ID).Delete(&models.RecipeComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id IN (?)", recipeIDs()).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return persistence("delete user", err)
	}
	return nil
}
