package service

import (
	"context"
	"time"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService manages the post lifecycle: creation and cascading deletion.
type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

// NewPostService returns a new PostService.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, comments repository.CommentRepository) *PostService {
	return &PostService{posts: posts, users: users, comments: comments}
}

// CreatePostInput holds the fields of a post creation request.
type CreatePostInput struct {
	UserID  primitive.ObjectID
	Images  []string
	Caption string
}

// CreatePost persists the post and appends its id to the owner's post list.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.PostDetail, error) {
	if len(in.Images) == 0 {
		return nil, models.NewValidationError("At least 1 image is needed to create a post")
	}

	owner, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		User:      owner.ID,
		Images:    in.Images,
		Caption:   in.Caption,
		Likes:     []primitive.ObjectID{},
		Comments:  []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.users.AddPost(ctx, owner.ID, post.ID); err != nil {
		return nil, err
	}

	return &models.PostDetail{Post: *post, Owner: owner.Summary()}, nil
}

// DeletePost removes the post and everything referencing it. Only the owner
// may delete.
//
// The cascade runs in a fixed order with no transaction: comments first, then
// the like/save scrub across all users, then the owner's post list, then the
// post document itself. The post record going away last means a crashed
// cascade is detectable (the post still exists but its references are gone)
// rather than leaving dangling references behind a deleted post.
func (s *PostService) DeletePost(ctx context.Context, requesterID, postID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.User != requesterID {
		return models.NewForbiddenError("Can not delete a post that you didn't create")
	}

	if _, err := s.comments.DeleteByPost(ctx, post.ID); err != nil {
		return err
	}
	if err := s.users.ScrubPostRefs(ctx, post.ID, post.Likes); err != nil {
		return err
	}
	if err := s.users.RemovePost(ctx, post.User, post.ID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return err
	}

	observability.CascadeDeletes.Inc()
	return nil
}
