package service

import (
	"context"
	"encoding/base64"
	"strings"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/storage"
	"glimpse/internal/validation"
)

// ImageService enforces the upload size budgets and hands the decoded bytes
// to the object store.
type ImageService struct {
	uploader storage.Uploader
}

// NewImageService returns a new ImageService.
func NewImageService(uploader storage.Uploader) *ImageService {
	return &ImageService{uploader: uploader}
}

// UploadPostImages stores a batch of base64-encoded images and returns their
// URLs. Budgets (7MB per image, 20MB per batch) are checked on the encoded
// payload before anything is decoded or stored.
func (s *ImageService) UploadPostImages(ctx context.Context, images []string) ([]string, error) {
	if msg := validation.ValidatePostImages(images); msg != "" {
		return nil, models.NewValidationError(msg)
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.store(ctx, image, "post")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// UploadProfileImage stores a single base64-encoded profile picture.
func (s *ImageService) UploadProfileImage(ctx context.Context, image string) (string, error) {
	if msg := validation.ValidateProfileImage(image); msg != "" {
		return "", models.NewValidationError(msg)
	}
	return s.store(ctx, image, "profile")
}

func (s *ImageService) store(ctx context.Context, b64 string, kind string) (string, error) {
	// Clients may send data URLs; only the payload matters here.
	if idx := strings.Index(b64, ","); idx != -1 && strings.HasPrefix(b64, "data:") {
		b64 = b64[idx+1:]
	}

	content, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", models.NewValidationError("Image is not valid base64")
	}

	url, err := s.uploader.Upload(ctx, content)
	if err != nil {
		return "", models.NewValidationError("Image could not be stored")
	}

	observability.MediaUploads.WithLabelValues(kind).Inc()
	return url, nil
}
