package service

import (
	"context"
	"time"

	"glimpse/internal/models"
	"glimpse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentService manages the comment lifecycle and keeps the owning post's
// comment list in sync.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CreateCommentInput holds the fields of a comment creation request.
type CreateCommentInput struct {
	UserID primitive.ObjectID
	PostID primitive.ObjectID
	Text   string
}

// CreateComment persists the comment and appends its id to the post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Comment must be at least 1 character long")
	}

	post, err := s.posts.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Post:      post.ID,
		User:      in.UserID,
		Comment:   in.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.posts.AddComment(ctx, post.ID, comment.ID); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes the comment id from its post's list, then deletes the
// comment document. Only the author may delete. The post's like/save sets are
// untouched.
func (s *CommentService) DeleteComment(ctx context.Context, requesterID, commentID primitive.ObjectID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.User != requesterID {
		return models.NewForbiddenError("Can not delete a comment that you didn't create")
	}

	if err := s.posts.RemoveComment(ctx, comment.Post, comment.ID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment.ID)
}
