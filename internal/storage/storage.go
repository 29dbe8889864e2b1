// Package storage keeps trainer profile photos, either on local disk or in an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultPresignedURLExpiry = 15 * time.Minute

var ErrInvalidKey = errors.New("invalid object key")

type PhotoStore interface {
	Save(ctx context.Context, key string, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error

	// URL returns an address a browser can load the photo from.
	URL(ctx context.Context, key string) (string, error)
}

// NewPhotoKey returns a fresh key under the trainers/ prefix.
func NewPhotoKey() string {
	return path.Join("trainers", uuid.NewString()+".webp")
}

func cleanKey(key string) (string, error) {
	key = path.Clean(strings.TrimPrefix(key, "/"))
	if key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return "", ErrInvalidKey
	}
	return key, nil
}
