package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateComment(t *testing.T) {
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(posts *MockPostRepository, comments *MockCommentRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"post": postID.Hex(), "comment": "great shot"},
			mockSetup: func(posts *MockPostRepository, comments *MockCommentRepository) {
				posts.On("GetByID", mock.Anything, postID).
					Return(&models.Post{ID: postID}, nil)
				comments.On("Create", mock.Anything, mock.Anything).Return(nil)
				posts.On("AddComment", mock.Anything, postID, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty comment",
			body:           map[string]string{"post": postID.Hex(), "comment": ""},
			mockSetup:      func(_ *MockPostRepository, _ *MockCommentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Comment must be at least 1 character long",
		},
		{
			name:           "Malformed post id",
			body:           map[string]string{"post": "nope", "comment": "hi"},
			mockSetup:      func(_ *MockPostRepository, _ *MockCommentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Malformatted ID",
		},
		{
			name: "Unknown post",
			body: map[string]string{"post": postID.Hex(), "comment": "hi"},
			mockSetup: func(posts *MockPostRepository, _ *MockCommentRepository) {
				posts.On("GetByID", mock.Anything, postID).
					Return(nil, models.NewNotFoundError("Post"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Post does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := new(MockPostRepository)
			comments := new(MockCommentRepository)
			tt.mockSetup(posts, comments)

			s := newTestServer(new(MockUserRepository), posts, comments)
			app := fiber.New()
			app.Post("/comments/", asUser(userID, "ann"), s.CreateComment)

			resp := postJSON(t, app, "/comments/", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}

			comment := body["comment"].(map[string]any)
			assert.Equal(t, "great shot", comment["comment"])
			assert.Equal(t, postID.Hex(), comment["post"])
			assert.Equal(t, userID.Hex(), comment["user"])
		})
	}
}

func TestDeleteComment(t *testing.T) {
	authorID := primitive.NewObjectID()
	postID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	tests := []struct {
		name           string
		requester      primitive.ObjectID
		mockSetup      func(posts *MockPostRepository, comments *MockCommentRepository)
		expectedStatus int
	}{
		{
			name:      "Author deletes",
			requester: authorID,
			mockSetup: func(posts *MockPostRepository, comments *MockCommentRepository) {
				comments.On("GetByID", mock.Anything, commentID).
					Return(&models.Comment{ID: commentID, Post: postID, User: authorID}, nil)
				posts.On("RemoveComment", mock.Anything, postID, commentID).Return(nil)
				comments.On("Delete", mock.Anything, commentID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "Non-author rejected",
			requester: primitive.NewObjectID(),
			mockSetup: func(_ *MockPostRepository, comments *MockCommentRepository) {
				comments.On("GetByID", mock.Anything, commentID).
					Return(&models.Comment{ID: commentID, Post: postID, User: authorID}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := new(MockPostRepository)
			comments := new(MockCommentRepository)
			tt.mockSetup(posts, comments)

			s := newTestServer(new(MockUserRepository), posts, comments)
			app := fiber.New()
			app.Delete("/comments/:id", asUser(tt.requester, "ann"), s.DeleteComment)

			req := httptest.NewRequest(http.MethodDelete, "/comments/"+commentID.Hex(), nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			posts.AssertExpectations(t)
			comments.AssertExpectations(t)
		})
	}
}
