package server

import (
	"errors"

	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseObjectID extracts a route parameter as an ObjectID. On malformed input
// it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Malformatted ID"))
		return primitive.NilObjectID, errResponseWritten
	}
	return id, nil
}

// currentUserID returns the authenticated user's id bound by AuthRequired.
func currentUserID(c *fiber.Ctx) primitive.ObjectID {
	return c.Locals("userID").(primitive.ObjectID)
}

// statusForError maps service error codes to HTTP statuses. Missing resources
// render as 400 rather than 404 so probing for valid ids stays uninformative.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation, models.CodeNotFound, models.CodeConflict:
			return fiber.StatusBadRequest
		case models.CodeUnauthorized:
			return fiber.StatusUnauthorized
		case models.CodeForbidden:
			return fiber.StatusForbidden
		}
	}
	return fiber.StatusInternalServerError
}

func (s *Server) respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// Lazy service constructors so tests can inject repository fakes on a bare
// Server struct without wiring every service up front.

func (s *Server) relationshipSvc() *service.RelationshipService {
	if s.relationshipService == nil {
		s.relationshipService = service.NewRelationshipService(s.userRepo, s.postRepo)
	}
	return s.relationshipService
}

func (s *Server) postSvc() *service.PostService {
	if s.postService == nil {
		s.postService = service.NewPostService(s.postRepo, s.userRepo, s.commentRepo)
	}
	return s.postService
}

func (s *Server) commentSvc() *service.CommentService {
	if s.commentService == nil {
		s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	}
	return s.commentService
}

func (s *Server) feedSvc() *service.FeedService {
	if s.feedService == nil {
		s.feedService = service.NewFeedService(s.userRepo, s.postRepo, s.commentRepo)
	}
	return s.feedService
}

func (s *Server) userSvc() *service.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(s.userRepo)
	}
	return s.userService
}

func (s *Server) imageSvc() *service.ImageService {
	if s.imageService == nil {
		s.imageService = service.NewImageService(s.uploader)
	}
	return s.imageService
}
