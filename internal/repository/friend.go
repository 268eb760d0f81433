package repository

import (
	"context"
	"errors"

	"secretely/internal/models"
	"secretely/internal/observability"

	"gorm.io/gorm"
)

// FriendRepository defines persistence operations for friend requests.
type FriendRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetPair(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error)
	GetBetween(ctx context.Context, userA, userB uint) (*models.FriendRequest, error)
	MarkAccepted(ctx context.Context, request *models.FriendRequest) error
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
	ListFriendIDs(ctx context.Context, userID uint) ([]uint, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository returns a new FriendRepository implementation.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	defer observability.TrackQuery("insert", "friend_requests")()
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Friend request already exists")
		}
		if isForeignKeyError(err) {
			return models.NewInvalidRequestError("One of the users does not exist")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetPair looks up a request by its exact stored direction.
func (r *friendRepository) GetPair(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// GetBetween looks up a request between two users in either direction.
func (r *friendRepository) GetBetween(ctx context.Context, userA, userB uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) MarkAccepted(ctx context.Context, request *models.FriendRequest) error {
	err := r.db.WithContext(ctx).
		Model(request).
		Update("accepted", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	request.Accepted = true
	return nil
}

// ListFriends returns the users on the other end of every accepted request
// involving userID, whether they sent it or received it.
func (r *friendRepository) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	defer observability.TrackQuery("select", "friend_requests")()
	var friends []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins(`JOIN friend_requests fr ON (fr.sender_id = users.id AND fr.receiver_id = ?)
			OR (fr.receiver_id = users.id AND fr.sender_id = ?)`, userID, userID).
		Where("fr.accepted = ?", true).
		Order("users.id ASC").
		Find(&friends).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}

// ListFriendIDs returns just the IDs of userID's accepted friends.
func (r *friendRepository) ListFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Select("CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS friend_id", userID).
		Where("accepted = ? AND (sender_id = ? OR receiver_id = ?)", true, userID, userID).
		Scan(&ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
