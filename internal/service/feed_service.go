package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feed composition limits.
const (
	PreviewLimit      = 6
	HomeFollowedLimit = 5
	HomeCommentLimit  = 2
	SuggestionLimit   = 3
)

// searchableFields are the user fields the search endpoint may match on.
var searchableFields = map[string]bool{
	"name":     true,
	"username": true,
}

// FeedService assembles the read-only views over the relationship state:
// previews, home, explore, suggestions and user search. It performs no writes.
type FeedService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository) *FeedService {
	return &FeedService{users: users, posts: posts, comments: comments}
}

// Previews returns the most recent posts of the named user, trimmed for the
// profile grid.
func (s *FeedService) Previews(ctx context.Context, username string) ([]models.PostPreview, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}

	return s.posts.ListPreviewsByUser(ctx, user.ID, PreviewLimit)
}

// Home returns at most one most-recent post from each of up to five followed
// users, enriched with owner summaries, liker summaries and the two most
// recent comments.
func (s *FeedService) Home(ctx context.Context, userID primitive.ObjectID) ([]models.FeedPost, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followed := user.Following
	if len(followed) > HomeFollowedLimit {
		followed = followed[:HomeFollowedLimit]
	}

	feed := []models.FeedPost{}
	for _, followedID := range followed {
		post, err := s.posts.LatestByUser(ctx, followedID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			continue
		}

		enriched, err := s.enrich(ctx, post)
		if err != nil {
			return nil, err
		}
		feed = append(feed, *enriched)
	}

	return feed, nil
}

func (s *FeedService) enrich(ctx context.Context, post *models.Post) (*models.FeedPost, error) {
	owner, err := s.users.GetByID(ctx, post.User)
	if err != nil {
		return nil, err
	}

	likers, err := s.users.ListSummariesByIDs(ctx, post.Likes)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListRecentByPost(ctx, post.ID, HomeCommentLimit)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.User)
	}
	authors, err := s.users.ListSummariesByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	usernameByID := make(map[primitive.ObjectID]string, len(authors))
	for _, author := range authors {
		usernameByID[author.ID] = author.Username
	}

	feedComments := make([]models.FeedComment, 0, len(comments))
	for _, comment := range comments {
		feedComments = append(feedComments, models.FeedComment{
			ID:        comment.ID,
			Comment:   comment.Comment,
			CreatedAt: comment.CreatedAt,
			User:      models.FeedCommentAuthor{Username: usernameByID[comment.User]},
		})
	}

	return &models.FeedPost{
		ID:       post.ID,
		User:     owner.Summary(),
		Images:   post.Images,
		Caption:  post.Caption,
		Likes:    likers,
		Comments: feedComments,
	}, nil
}

// Explore returns posts whose owner is neither the user nor anyone they follow.
func (s *FeedService) Explore(ctx context.Context, userID primitive.ObjectID) ([]models.ExplorePost, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := append(append([]primitive.ObjectID{}, user.Following...), user.ID)
	return s.posts.ListExcludingOwners(ctx, exclude)
}

// Suggestions returns up to three users not followed by and not equal to the user.
func (s *FeedService) Suggestions(ctx context.Context, userID primitive.ObjectID) ([]models.UserSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := append(append([]primitive.ObjectID{}, user.Following...), user.ID)
	return s.users.ListSuggestions(ctx, exclude, SuggestionLimit)
}

// SearchUsers matches users where any given field contains its value,
// case-insensitively. Unknown fields are ignored; at least one usable field
// is required.
func (s *FeedService) SearchUsers(ctx context.Context, query map[string]string) ([]models.UserSummary, error) {
	fields := map[string]string{}
	for field, value := range query {
		if searchableFields[field] && value != "" {
			fields[field] = value
		}
	}

	if len(fields) == 0 {
		return nil, models.NewValidationError("Search options were not given")
	}

	return s.users.Search(ctx, fields)
}
