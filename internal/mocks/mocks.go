// Package mocks provides testify mocks of the service interfaces.
package mocks

import (
	"context"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

var (
	_ service.IAuthService       = (*MockAuthService)(nil)
	_ service.ICommentService    = (*MockCommentService)(nil)
	_ service.IRecipeService     = (*MockRecipeService)(nil)
	_ service.IIngredientService = (*MockIngredientService)(nil)
)

// MockCommentService is a mock implementation of the comment service
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context) ([]types.FeedComment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.FeedComment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, userID uint, content string) (*models.Comment, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
