package service

import (
	"context"

	"glimpse/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn            func(context.Context, primitive.ObjectID) (*models.User, error)
	getByUsernameFn      func(context.Context, string) (*models.User, error)
	getByEmailFn         func(context.Context, string) (*models.User, error)
	createFn             func(context.Context, *models.User) error
	updateProfileFn      func(context.Context, primitive.ObjectID, models.Profile) error
	addPostFn            func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removePostFn         func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	addFollowingFn       func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeFollowingFn    func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	addFollowerFn        func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeFollowerFn     func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	addLikeFn            func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeLikeFn         func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	addSaveFn            func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeSaveFn         func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	scrubPostRefsFn      func(context.Context, primitive.ObjectID, []primitive.ObjectID) error
	listSuggestionsFn    func(context.Context, []primitive.ObjectID, int) ([]models.UserSummary, error)
	listSummariesByIDsFn func(context.Context, []primitive.ObjectID) ([]models.UserSummary, error)
	searchFn             func(context.Context, map[string]string) ([]models.UserSummary, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.Profile) error {
	return s.updateProfileFn(ctx, id, profile)
}
func (s *userRepoStub) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.addPostFn(ctx, userID, postID)
}
func (s *userRepoStub) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.removePostFn(ctx, userID, postID)
}
func (s *userRepoStub) AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return s.addFollowingFn(ctx, userID, targetID)
}
func (s *userRepoStub) RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return s.removeFollowingFn(ctx, userID, targetID)
}
func (s *userRepoStub) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return s.addFollowerFn(ctx, userID, followerID)
}
func (s *userRepoStub) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return s.removeFollowerFn(ctx, userID, followerID)
}
func (s *userRepoStub) AddLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.addLikeFn(ctx, userID, postID)
}
func (s *userRepoStub) RemoveLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.removeLikeFn(ctx, userID, postID)
}
func (s *userRepoStub) AddSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.addSaveFn(ctx, userID, postID)
}
func (s *userRepoStub) RemoveSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	return s.removeSaveFn(ctx, userID, postID)
}
func (s *userRepoStub) ScrubPostRefs(ctx context.Context, postID primitive.ObjectID, likerIDs []primitive.ObjectID) error {
	return s.scrubPostRefsFn(ctx, postID, likerIDs)
}
func (s *userRepoStub) ListSuggestions(ctx context.Context, exclude []primitive.ObjectID, limit int) ([]models.UserSummary, error) {
	return s.listSuggestionsFn(ctx, exclude, limit)
}
func (s *userRepoStub) ListSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	return s.listSummariesByIDsFn(ctx, ids)
}
func (s *userRepoStub) Search(ctx context.Context, fields map[string]string) ([]models.UserSummary, error) {
	return s.searchFn(ctx, fields)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, _ primitive.ObjectID) (*models.User, error) {
			return &models.User{}, nil
		},
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateProfileFn: func(_ context.Context, _ primitive.ObjectID, _ models.Profile) error { return nil },
		addPostFn:       func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removePostFn:    func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		addFollowingFn:  func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeFollowingFn: func(_ context.Context, _, _ primitive.ObjectID) error {
			return nil
		},
		addFollowerFn:    func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeFollowerFn: func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		addLikeFn:        func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeLikeFn:     func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		addSaveFn:        func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeSaveFn:     func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		scrubPostRefsFn: func(_ context.Context, _ primitive.ObjectID, _ []primitive.ObjectID) error {
			return nil
		},
		listSuggestionsFn: func(_ context.Context, _ []primitive.ObjectID, _ int) ([]models.UserSummary, error) {
			return nil, nil
		},
		listSummariesByIDsFn: func(_ context.Context, _ []primitive.ObjectID) ([]models.UserSummary, error) {
			return nil, nil
		},
		searchFn: func(_ context.Context, _ map[string]string) ([]models.UserSummary, error) {
			return nil, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getByIDFn             func(context.Context, primitive.ObjectID) (*models.Post, error)
	createFn              func(context.Context, *models.Post) error
	deleteFn              func(context.Context, primitive.ObjectID) error
	addLikeFn             func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeLikeFn          func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	addCommentFn          func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	removeCommentFn       func(context.Context, primitive.ObjectID, primitive.ObjectID) error
	listPreviewsByUserFn  func(context.Context, primitive.ObjectID, int) ([]models.PostPreview, error)
	latestByUserFn        func(context.Context, primitive.ObjectID) (*models.Post, error)
	listExcludingOwnersFn func(context.Context, []primitive.ObjectID) ([]models.ExplorePost, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return s.addLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return s.removeLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	return s.addCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	return s.removeCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) ListPreviewsByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.PostPreview, error) {
	return s.listPreviewsByUserFn(ctx, userID, limit)
}
func (s *postRepoStub) LatestByUser(ctx context.Context, userID primitive.ObjectID) (*models.Post, error) {
	return s.latestByUserFn(ctx, userID)
}
func (s *postRepoStub) ListExcludingOwners(ctx context.Context, owners []primitive.ObjectID) ([]models.ExplorePost, error) {
	return s.listExcludingOwnersFn(ctx, owners)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn: func(_ context.Context, _ primitive.ObjectID) (*models.Post, error) {
			return &models.Post{}, nil
		},
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:        func(_ context.Context, _ primitive.ObjectID) error { return nil },
		addLikeFn:       func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeLikeFn:    func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		addCommentFn:    func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		removeCommentFn: func(_ context.Context, _, _ primitive.ObjectID) error { return nil },
		listPreviewsByUserFn: func(_ context.Context, _ primitive.ObjectID, _ int) ([]models.PostPreview, error) {
			return nil, nil
		},
		latestByUserFn: func(_ context.Context, _ primitive.ObjectID) (*models.Post, error) {
			return nil, nil
		},
		listExcludingOwnersFn: func(_ context.Context, _ []primitive.ObjectID) ([]models.ExplorePost, error) {
			return nil, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	getByIDFn          func(context.Context, primitive.ObjectID) (*models.Comment, error)
	createFn           func(context.Context, *models.Comment) error
	deleteFn           func(context.Context, primitive.ObjectID) error
	deleteByPostFn     func(context.Context, primitive.ObjectID) (int64, error)
	listRecentByPostFn func(context.Context, primitive.ObjectID, int) ([]models.Comment, error)
}

func (s *commentRepoStub) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.deleteByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListRecentByPost(ctx context.Context, postID primitive.ObjectID, limit int) ([]models.Comment, error) {
	return s.listRecentByPostFn(ctx, postID, limit)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		getByIDFn: func(_ context.Context, _ primitive.ObjectID) (*models.Comment, error) {
			return &models.Comment{}, nil
		},
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:       func(_ context.Context, _ primitive.ObjectID) error { return nil },
		deleteByPostFn: func(_ context.Context, _ primitive.ObjectID) (int64, error) { return 0, nil },
		listRecentByPostFn: func(_ context.Context, _ primitive.ObjectID, _ int) ([]models.Comment, error) {
			return nil, nil
		},
	}
}
