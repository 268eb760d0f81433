package repository

import (
	"context"

	"secretely/internal/models"
	"secretely/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "comments")()
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewInvalidRequestError("Post does not exist")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
