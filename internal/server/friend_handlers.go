package server

import (
	"secretely/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest creates a pending friend request to the target user
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	receiverID, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	request, err := s.friendService.SendRequest(c.UserContext(), currentUserID(c), receiverID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// AcceptFriendRequest accepts a pending request the target user sent to the caller
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	senderID, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	request, err := s.friendService.AcceptRequest(c.UserContext(), currentUserID(c), senderID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(request)
}

// GetFriends lists the caller's accepted friends without email addresses
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.ListFriends(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(friends)
}
