package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"
	"glimpse/internal/validation"
)

// UserService manages profile edits.
type UserService struct {
	users repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// UpdateProfileInput holds the editable profile fields. An empty ProfilePic
// keeps the current picture.
type UpdateProfileInput struct {
	Username   string
	Name       string
	Biography  string
	ProfilePic string
}

// UpdateProfile applies the edits to the named account and returns the
// resulting profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	if msg := validation.ValidateProfileEdits(in.Name, in.Biography); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("Account")
	}

	profile := models.Profile{
		Name:       in.Name,
		Biography:  in.Biography,
		ProfilePic: in.ProfilePic,
	}
	if profile.ProfilePic == "" {
		profile.ProfilePic = user.ProfilePic
	}

	if err := s.users.UpdateProfile(ctx, user.ID, profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
