package server

import (
	"strconv"
	"strings"

	"secretely/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parsePagination reads limit/offset query params with sane bounds.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// parseID parses a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// clientInfo captures the request origin for the post envelope. The
// language is the first tag of Accept-Language; "*" or an absent header
// falls back to "en".
func clientInfo(c *fiber.Ctx) models.ClientInfo {
	language := "en"
	if header := c.Get("Accept-Language"); header != "" {
		first := strings.TrimSpace(strings.Split(header, ",")[0])
		if i := strings.Index(first, ";"); i >= 0 {
			first = strings.TrimSpace(first[:i])
		}
		if first != "" && first != "*" {
			language = first
		}
	}

	return models.ClientInfo{
		IP:       c.IP(),
		Language: language,
	}
}

// currentUserID returns the authenticated user's id from locals.
// Only valid behind AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
