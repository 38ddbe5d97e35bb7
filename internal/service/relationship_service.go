// Package service implements the business rules between handlers and repositories.
package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipService toggles the relationship edges between users and posts:
// follow (user→user pair), like (user↔post pair) and save (user→post pointer).
//
// Every toggle writes the actor-side document first and the counterpart
// second, with no cross-document transaction. A crash between the two writes
// leaves the actor side updated and the counterpart stale, which is the
// documented partial state to look for when diagnosing inconsistencies.
type RelationshipService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(users repository.UserRepository, posts repository.PostRepository) *RelationshipService {
	return &RelationshipService{users: users, posts: posts}
}

// ToggleResult reports a toggle outcome: Created is true when the edge was
// added, false when it was removed. IDs is the actor-side set after the write,
// so callers can render state without a second read.
type ToggleResult struct {
	Created bool
	IDs     []primitive.ObjectID
}

// ToggleFollow follows the named user if the actor is not following them,
// otherwise unfollows. Returns the actor's updated following set.
func (s *RelationshipService) ToggleFollow(ctx context.Context, actorID primitive.ObjectID, targetUsername string) (*ToggleResult, error) {
	target, err := s.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("User")
	}
	if target.ID == actorID {
		return nil, models.NewValidationError("Can not follow yourself")
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !containsID(actor.Following, target.ID) {
		// Actor side first, then the counterpart.
		if err := s.users.AddFollowing(ctx, actorID, target.ID); err != nil {
			return nil, err
		}
		if err := s.users.AddFollower(ctx, target.ID, actorID); err != nil {
			return nil, err
		}
		observability.EdgeToggles.WithLabelValues("follow", "created").Inc()
		return &ToggleResult{Created: true, IDs: append(actor.Following, target.ID)}, nil
	}

	if err := s.users.RemoveFollowing(ctx, actorID, target.ID); err != nil {
		return nil, err
	}
	if err := s.users.RemoveFollower(ctx, target.ID, actorID); err != nil {
		return nil, err
	}
	observability.EdgeToggles.WithLabelValues("follow", "removed").Inc()
	return &ToggleResult{Created: false, IDs: withoutID(actor.Following, target.ID)}, nil
}

// ToggleLike likes the post if the actor has not liked it, otherwise removes
// the like from both sides. Returns the actor's updated likes set.
func (s *RelationshipService) ToggleLike(ctx context.Context, actorID, postID primitive.ObjectID) (*ToggleResult, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !containsID(actor.Likes, post.ID) {
		if err := s.users.AddLike(ctx, actorID, post.ID); err != nil {
			return nil, err
		}
		if err := s.posts.AddLike(ctx, post.ID, actorID); err != nil {
			return nil, err
		}
		observability.EdgeToggles.WithLabelValues("like", "created").Inc()
		return &ToggleResult{Created: true, IDs: append(actor.Likes, post.ID)}, nil
	}

	if err := s.users.RemoveLike(ctx, actorID, post.ID); err != nil {
		return nil, err
	}
	if err := s.posts.RemoveLike(ctx, post.ID, actorID); err != nil {
		return nil, err
	}
	observability.EdgeToggles.WithLabelValues("like", "removed").Inc()
	return &ToggleResult{Created: false, IDs: withoutID(actor.Likes, post.ID)}, nil
}

// ToggleSave saves the post for the actor or removes an existing save. The
// save is recorded on the user document only: posts carry no saved-by set.
func (s *RelationshipService) ToggleSave(ctx context.Context, actorID, postID primitive.ObjectID) (*ToggleResult, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !containsID(actor.Saved, post.ID) {
		if err := s.users.AddSave(ctx, actorID, post.ID); err != nil {
			return nil, err
		}
		observability.EdgeToggles.WithLabelValues("save", "created").Inc()
		return &ToggleResult{Created: true, IDs: append(actor.Saved, post.ID)}, nil
	}

	if err := s.users.RemoveSave(ctx, actorID, post.ID); err != nil {
		return nil, err
	}
	observability.EdgeToggles.WithLabelValues("save", "removed").Inc()
	return &ToggleResult{Created: false, IDs: withoutID(actor.Saved, post.ID)}, nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func withoutID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
