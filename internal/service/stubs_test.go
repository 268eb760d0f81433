package service

import (
	"context"

	"secretely/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
	}
}

type friendRepoStub struct {
	createFn        func(context.Context, *models.FriendRequest) error
	getPairFn       func(context.Context, uint, uint) (*models.FriendRequest, error)
	getBetweenFn    func(context.Context, uint, uint) (*models.FriendRequest, error)
	markAcceptedFn  func(context.Context, *models.FriendRequest) error
	listFriendsFn   func(context.Context, uint) ([]models.User, error)
	listFriendIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *friendRepoStub) Create(ctx context.Context, request *models.FriendRequest) error {
	return s.createFn(ctx, request)
}
func (s *friendRepoStub) GetPair(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	return s.getPairFn(ctx, senderID, receiverID)
}
func (s *friendRepoStub) GetBetween(ctx context.Context, userA, userB uint) (*models.FriendRequest, error) {
	return s.getBetweenFn(ctx, userA, userB)
}
func (s *friendRepoStub) MarkAccepted(ctx context.Context, request *models.FriendRequest) error {
	return s.markAcceptedFn(ctx, request)
}
func (s *friendRepoStub) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFriendsFn(ctx, userID)
}
func (s *friendRepoStub) ListFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listFriendIDsFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:        func(context.Context, *models.FriendRequest) error { return nil },
		getPairFn:       func(context.Context, uint, uint) (*models.FriendRequest, error) { return nil, nil },
		getBetweenFn:    func(context.Context, uint, uint) (*models.FriendRequest, error) { return nil, nil },
		markAcceptedFn:  func(context.Context, *models.FriendRequest) error { return nil },
		listFriendsFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		listFriendIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	listPublicSecretsFn   func(context.Context, int, int) ([]models.Post, error)
	listSecretsByOwnersFn func(context.Context, []uint, int, int) ([]models.Post, error)
	listWYRsFn            func(context.Context, int, int) ([]models.Post, error)
	addLikeFn             func(context.Context, *models.Like) error
	countLikesFn          func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListPublicSecrets(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listPublicSecretsFn(ctx, limit, offset)
}
func (s *postRepoStub) ListSecretsByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Post, error) {
	return s.listSecretsByOwnersFn(ctx, ownerIDs, limit, offset)
}
func (s *postRepoStub) ListWYRs(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listWYRsFn(ctx, limit, offset)
}
func (s *postRepoStub) AddLike(ctx context.Context, like *models.Like) error {
	return s.addLikeFn(ctx, like)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:              func(context.Context, *models.Post) error { return nil },
		getByIDFn:             func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		listPublicSecretsFn:   func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		listSecretsByOwnersFn: func(context.Context, []uint, int, int) ([]models.Post, error) { return nil, nil },
		listWYRsFn:            func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		addLikeFn:             func(context.Context, *models.Like) error { return nil },
		countLikesFn:          func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
	}
}
