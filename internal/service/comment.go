package service

import (
	"context"

	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/types"
	"gorm.io/gorm"
)

// CommentService handles the main feed
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListComments returns every feed comment, newest first
func (s *CommentService) ListComments(ctx context.Context) ([]types.FeedComment, error) {
	var comments []types.FeedComment
	err := s.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at, users.username AS author").
		Joins("JOIN users ON users.id = comments.user_id").
		Order("comments.id DESC").
		Scan(&comments).Error
	if err != nil {
		return nil, persistence("list comments", err)
	}
	return comments, nil
}

// CreateComment posts content to the feed as userID. The content is only
// bounded by the column size.
func (s *CommentService) CreateComment(ctx context.Context, userID uint, content string) (*models.Comment, error) {
	if tooLong(content, models.MaxCommentLength) {
		return nil, invalid("contents", "is too long")
	}

	comment := models.Comment{
		Content: content,
		UserID:  userID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, persistence("create comment", err)
	}
	return &comment, nil
}
