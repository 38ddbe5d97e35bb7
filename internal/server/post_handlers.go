package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Images  []string `json:"images"`
	Caption string   `json:"caption"`
}

type postImagesRequest struct {
	Images []string `json:"images"`
}

// CreatePost handles post creation for the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSvc().CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Images:  req.Images,
		Caption: req.Caption,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// DeletePost removes a post, its comments, and every reference to it.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postSvc().DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost toggles the authenticated user's like on a post.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.relationshipSvc().ToggleLike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"userLikes": result.IDs})
}

// SavePost toggles a post in the authenticated user's saved collection.
func (s *Server) SavePost(c *fiber.Ctx) error {
	postID, err := parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.relationshipSvc().ToggleSave(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"userSaved": result.IDs})
}

// GetPreviews returns a user's most recent post previews for their profile grid.
func (s *Server) GetPreviews(c *fiber.Ctx) error {
	previews, err := s.feedSvc().Previews(c.UserContext(), c.Params("username"))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"previews": previews})
}

// UploadPostImages stores a batch of base64-encoded images and returns their URLs.
func (s *Server) UploadPostImages(c *fiber.Ctx) error {
	var req postImagesRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	urls, err := s.imageSvc().UploadPostImages(c.UserContext(), req.Images)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"urls": urls})
}
