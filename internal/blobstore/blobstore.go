// Package blobstore abstracts the external media store. Uploads must be
// persisted before a revision references them; a failed save leaves no
// revision state behind.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

// Store accepts file uploads and returns retrievable URLs.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalStore is a disk-backed Store serving files under a base URL. It
// stands in for the production blob store behind the same interface.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at dir, creating it if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the upload to disk under a unique name and returns its URL.
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.WrapError(domain.KindStorageFailure, "save media", err)
	}

	name := uuid.New().String() + sanitizeExt(filename)
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", domain.WrapError(domain.KindStorageFailure, "create media file", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		_ = os.Remove(path)
		return "", domain.WrapError(domain.KindStorageFailure, "write media file", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", domain.WrapError(domain.KindStorageFailure, "close media file", err)
	}

	return s.baseURL + "/" + name, nil
}

// sanitizeExt keeps only a simple file extension from the client filename.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
