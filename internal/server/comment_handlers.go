package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createCommentRequest struct {
	Post    string `json:"post"`
	Comment string `json:"comment"`
}

// CreateComment adds a comment to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	postID, err := primitive.ObjectIDFromHex(req.Post)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Malformatted ID"))
	}

	comment, err := s.commentSvc().CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   req.Comment,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment written by the authenticated user.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseObjectID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentSvc().DeleteComment(c.UserContext(), currentUserID(c), commentID); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
