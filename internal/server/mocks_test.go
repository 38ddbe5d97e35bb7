package server

import (
	"context"

	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.Profile) error {
	args := m.Called(ctx, id, profile)
	return args.Error(0)
}

func (m *MockUserRepository) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	args := m.Called(ctx, userID, targetID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	args := m.Called(ctx, userID, targetID)
	return args.Error(0)
}

func (m *MockUserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	args := m.Called(ctx, userID, followerID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	args := m.Called(ctx, userID, followerID)
	return args.Error(0)
}

func (m *MockUserRepository) AddLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) AddSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserRepository) ScrubPostRefs(ctx context.Context, postID primitive.ObjectID, likerIDs []primitive.ObjectID) error {
	args := m.Called(ctx, postID, likerIDs)
	return args.Error(0)
}

func (m *MockUserRepository) ListSuggestions(ctx context.Context, exclude []primitive.ObjectID, limit int) ([]models.UserSummary, error) {
	args := m.Called(ctx, exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockUserRepository) ListSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, fields map[string]string) ([]models.UserSummary, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *MockPostRepository) ListPreviewsByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.PostPreview, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostPreview), args.Error(1)
}

func (m *MockPostRepository) LatestByUser(ctx context.Context, userID primitive.ObjectID) (*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListExcludingOwners(ctx context.Context, owners []primitive.ObjectID) ([]models.ExplorePost, error) {
	args := m.Called(ctx, owners)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExplorePost), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) ListRecentByPost(ctx context.Context, postID primitive.ObjectID, limit int) ([]models.Comment, error) {
	args := m.Called(ctx, postID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// asUser simulates AuthRequired for protected-route tests.
func asUser(userID primitive.ObjectID, username string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("username", username)
		return c.Next()
	}
}
