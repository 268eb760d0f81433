package service

import (
	"context"
	"strings"

	"secretely/internal/models"
	"secretely/internal/repository"
)

// PostService provides secret/WYR posting, likes, and comments.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	friendRepo  repository.FriendRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, friendRepo repository.FriendRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		friendRepo:  friendRepo,
	}
}

// CreateSecret stores a secret post. A nil ownerID makes it anonymous.
func (s *PostService) CreateSecret(ctx context.Context, ownerID *uint, isPublic bool, text string, client models.ClientInfo) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Secret text cannot be empty")
	}

	post := &models.Post{
		IsPublic: isPublic,
		ClientIP: client.IP,
		Language: client.Language,
		Type:     models.PostTypeSecret,
		OwnerID:  ownerID,
		Secret:   &models.Secret{Text: text},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateWYR stores a would-you-rather post with its two options. WYRs
// never record an owner.
func (s *PostService) CreateWYR(ctx context.Context, isPublic bool, optionOne, optionTwo string, client models.ClientInfo) (*models.Post, error) {
	optionOne = strings.TrimSpace(optionOne)
	optionTwo = strings.TrimSpace(optionTwo)
	if optionOne == "" || optionTwo == "" {
		return nil, models.NewValidationError("Both options are required")
	}

	post := &models.Post{
		IsPublic: isPublic,
		ClientIP: client.IP,
		Language: client.Language,
		Type:     models.PostTypeWYR,
		WYR: &models.WYR{
			OptionOne: optionOne,
			OptionTwo: optionTwo,
		},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPublicSecrets pages secrets flagged public.
func (s *PostService) ListPublicSecrets(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListPublicSecrets(ctx, limit, offset)
}

// ListFriendsSecrets resolves the caller's accepted friends and pages
// their secrets, public or not.
func (s *PostService) ListFriendsSecrets(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	friendIDs, err := s.friendRepo.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListSecretsByOwners(ctx, friendIDs, limit, offset)
}

// ListWYRs pages would-you-rather posts without a visibility filter.
func (s *PostService) ListWYRs(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListWYRs(ctx, limit, offset)
}

// Like records that the user liked the post.
func (s *PostService) Like(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewInvalidRequestError("Post does not exist")
	}

	return s.postRepo.AddLike(ctx, &models.Like{UserID: userID, PostID: postID})
}

// CountLikes returns the number of likes on the post, zero if none.
func (s *PostService) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.postRepo.CountLikes(ctx, postID)
}

// AddComment appends a comment to the post.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text cannot be empty")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewInvalidRequestError("Post does not exist")
	}

	comment := &models.Comment{
		Text:   text,
		UserID: userID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns every comment on the post in insertion order.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
