package server

import (
	"time"

	"secretely/internal/models"
	"secretely/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// RegisterRequest represents the signup request payload
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest represents the credentials for token issuance
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successfully issued session token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterUser handles user registration
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), req.Username, req.Name, req.Email, req.Password)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// IssueToken exchanges credentials for a session token
func (s *Server) IssueToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	ttl := time.Duration(s.config.SessionTTLMinutes) * time.Minute
	token, err := s.auth.Issue(user.ID, ttl)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	observability.TokensIssued.Inc()

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
