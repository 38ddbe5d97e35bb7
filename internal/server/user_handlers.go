package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Name       string `json:"name"`
	Biography  string `json:"biography"`
	ProfilePic string `json:"profilePic"`
}

type profileImageRequest struct {
	Image string `json:"image"`
}

// FollowUser toggles the authenticated user's follow edge on another user.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	result, err := s.relationshipSvc().ToggleFollow(
		c.UserContext(), currentUserID(c), c.Params("username"))
	if err != nil {
		return s.respondError(c, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"following": result.IDs})
}

// GetHome returns the home feed built from the accounts the user follows.
func (s *Server) GetHome(c *fiber.Ctx) error {
	posts, err := s.feedSvc().Home(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"posts": posts})
}

// GetExplore returns posts from accounts the user does not follow.
func (s *Server) GetExplore(c *fiber.Ctx) error {
	posts, err := s.feedSvc().Explore(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"posts": posts})
}

// GetSuggestions returns accounts the user might want to follow.
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := s.feedSvc().Suggestions(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"suggestions": suggestions})
}

// UpdateProfile updates the authenticated user's editable profile fields.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.userSvc().UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		Username:   c.Params("username"),
		Name:       req.Name,
		Biography:  req.Biography,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UploadProfileImage stores a base64-encoded profile picture and returns its URL.
func (s *Server) UploadProfileImage(c *fiber.Ctx) error {
	var req profileImageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	url, err := s.imageSvc().UploadProfileImage(c.UserContext(), req.Image)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
