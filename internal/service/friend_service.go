package service

import (
	"context"
	"errors"

	"secretely/internal/models"
	"secretely/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest creates a pending friend request from sender to receiver.
func (s *FriendService) SendRequest(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, models.NewInvalidRequestError("Cannot send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewInvalidRequestError("One of the users does not exist")
		}
		return nil, err
	}

	existing, err := s.friendRepo.GetBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Accepted {
			return nil, models.NewConflictError("You are already friends")
		}
		if existing.SenderID == senderID {
			return nil, models.NewConflictError("Friend request already sent")
		}
		return nil, models.NewConflictError("This user already sent you a friend request")
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := s.friendRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// AcceptRequest flips the request from sender to receiver to accepted.
// The match is exact on the stored direction: only the receiver of a
// request can accept it. Accepting an already-accepted request succeeds
// silently.
func (s *FriendService) AcceptRequest(ctx context.Context, receiverID, senderID uint) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetPair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, models.NewNotFoundError("Friend request", senderID)
	}
	if request.Accepted {
		return request, nil
	}

	if err := s.friendRepo.MarkAccepted(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListFriends returns summaries of every accepted friend of the user.
// Email is deliberately absent from the summary.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(friends))
	for _, friend := range friends {
		summaries = append(summaries, friend.Summary())
	}
	return summaries, nil
}
