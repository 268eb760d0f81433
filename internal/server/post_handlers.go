package server

import (
	"secretely/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SecretRequest represents the payload for posting a secret
type SecretRequest struct {
	Text     string `json:"text"`
	IsPublic bool   `json:"is_public"`
}

// WYRRequest represents the payload for posting a would-you-rather
type WYRRequest struct {
	OptionOne string `json:"option_one"`
	OptionTwo string `json:"option_two"`
	IsPublic  bool   `json:"is_public"`
}

// CommentRequest represents the payload for commenting on a post
type CommentRequest struct {
	Text string `json:"text"`
}

// LikeCountResponse represents the like total for a post
type LikeCountResponse struct {
	PostID uint  `json:"post_id"`
	Count  int64 `json:"count"`
}

// CreateSignedSecret posts a secret attributed to the caller
func (s *Server) CreateSignedSecret(c *fiber.Ctx) error {
	var req SecretRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	ownerID := currentUserID(c)
	post, err := s.postService.CreateSecret(c.UserContext(), &ownerID, req.IsPublic, req.Text, clientInfo(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// CreateAnonSecret posts a secret with no owner. A valid bearer token,
// if present, is deliberately ignored for attribution.
func (s *Server) CreateAnonSecret(c *fiber.Ctx) error {
	var req SecretRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreateSecret(c.UserContext(), nil, req.IsPublic, req.Text, clientInfo(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPublicSecrets pages secrets flagged public
func (s *Server) GetPublicSecrets(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.postService.ListPublicSecrets(c.UserContext(), limit, offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// GetFriendsSecrets pages secrets posted by the caller's accepted friends
func (s *Server) GetFriendsSecrets(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.postService.ListFriendsSecrets(c.UserContext(), currentUserID(c), limit, offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// CreateWYR posts a would-you-rather with two options. WYRs are always
// anonymous: no token is read and no owner is recorded.
func (s *Server) CreateWYR(c *fiber.Ctx) error {
	var req WYRRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreateWYR(c.UserContext(), req.IsPublic, req.OptionOne, req.OptionTwo, clientInfo(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetWYRs pages would-you-rather posts without a visibility filter
func (s *Server) GetWYRs(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.postService.ListWYRs(c.UserContext(), limit, offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// LikePost records the caller's like on the post
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	if err := s.postService.Like(c.UserContext(), currentUserID(c), postID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post_id": postID,
		"liked":   true,
	})
}

// GetLikeCount returns the number of likes on the post
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	count, err := s.postService.CountLikes(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(LikeCountResponse{PostID: postID, Count: count})
}

// CreateComment appends the caller's comment to the post
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.AddComment(c.UserContext(), currentUserID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments returns every comment on the post
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	comments, err := s.postService.ListComments(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}
