package repository

import (
	"context"
	"errors"

	"secretely/internal/cache"
	"secretely/internal/models"
	"secretely/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts, likes, and their counts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListPublicSecrets(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListSecretsByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Post, error)
	ListWYRs(ctx context.Context, limit, offset int) ([]models.Post, error)
	AddLike(ctx context.Context, like *models.Like) error
	CountLikes(ctx context.Context, postID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the envelope row and its extension row in one transaction.
// GORM cascades the Secret or WYR association with the envelope's generated id.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		if isForeignKeyError(err) {
			return models.NewInvalidRequestError("Post owner does not exist")
		}
		return models.NewInternalError(err)
	}
	observability.PostsCreated.WithLabelValues(string(post.Type)).Inc()
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Secret").
		Preload("WYR").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListPublicSecrets(ctx context.Context, limit, offset int) ([]models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Secret").
		Where("type = ? AND is_public = ?", models.PostTypeSecret, true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListSecretsByOwners pages secrets owned by any of the given users.
// Filtering happens in SQL before the page is cut, so every page is full
// until the set is exhausted.
func (r *postRepository) ListSecretsByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Post, error) {
	if len(ownerIDs) == 0 {
		return []models.Post{}, nil
	}
	defer observability.TrackQuery("select", "posts")()
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Secret").
		Where("type = ? AND owner_id IN ?", models.PostTypeSecret, ownerIDs).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListWYRs(ctx context.Context, limit, offset int) ([]models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("WYR").
		Where("type = ?", models.PostTypeWYR).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) AddLike(ctx context.Context, like *models.Like) error {
	defer observability.TrackQuery("insert", "likes")()
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post already liked")
		}
		if isForeignKeyError(err) {
			return models.NewInvalidRequestError("Post does not exist")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateLikeCount(ctx, like.PostID)
	return nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	key := cache.LikeCountKey(postID)

	err := cache.Aside(ctx, key, &count, cache.LikeCountTTL, func() error {
		defer observability.TrackQuery("select", "likes")()
		if err := r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("post_id = ?", postID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
