package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchUsers finds users matching the query string filters.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	results, err := s.feedSvc().SearchUsers(c.UserContext(), c.Queries())
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
