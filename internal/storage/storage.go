// Package storage abstracts the object store that holds uploaded media.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores a media object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, content []byte) (string, error)
}

var extensionByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// FileStore is an Uploader backed by a local directory. Objects get random
// names; the returned URL is the configured base URL plus the object name.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates the media directory if needed and returns the store.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FileStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the object to disk and returns its URL.
func (s *FileStore) Upload(_ context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty media object")
	}

	ext, ok := extensionByMIME[http.DetectContentType(content)]
	if !ok {
		return "", fmt.Errorf("unsupported media type")
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("write media object: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
