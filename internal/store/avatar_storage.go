package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/google/uuid"
)

// avatarPathPrefix is the public URL prefix under which stored images are
// addressed. The document records paths with this prefix; the storage maps
// them back onto the configured directory.
const avatarPathPrefix = "/uploads/profile_images/"

// avatarStorage is the filesystem implementation of [AvatarStorage].
// Uploaded profile images are kept outside the JSON document — the document
// only holds lightweight path references — so avatar uploads do not inflate
// every subsequent whole-document read and write.
type avatarStorage struct {
	dir    string
	logger *logger.Logger
}

// NewAvatarStorage constructs an [AvatarStorage] rooted at dir, creating
// the directory if it does not exist.
func NewAvatarStorage(dir string, logger *logger.Logger) (AvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating avatar directory: %w", ErrStorageUnavailable, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating avatar storage")
	return &avatarStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveAvatar writes the image content to a freshly named file (uuid + ext)
// and returns its public relative path. File names are never derived from
// user input, so path traversal through the upload is not possible.
func (s *avatarStorage) SaveAvatar(ctx context.Context, content io.Reader, ext string) (string, error) {
	log := logger.FromContext(ctx)

	fileName := uuid.NewString() + ext
	filePath := filepath.Join(s.dir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		log.Err(err).Str("path", filePath).Msg("error creating avatar file")
		return "", fmt.Errorf("%w: creating avatar file: %w", ErrStorageUnavailable, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		log.Err(err).Str("path", filePath).Msg("error writing avatar file")
		return "", fmt.Errorf("%w: writing avatar file: %w", ErrStorageUnavailable, err)
	}

	return avatarPathPrefix + fileName, nil
}

// DeleteAvatar removes a stored image by its public path. Paths that do not
// carry the avatar prefix, and files that are already gone, are ignored —
// replacing an avatar must never fail because the old file vanished.
func (s *avatarStorage) DeleteAvatar(ctx context.Context, imagePath string) error {
	log := logger.FromContext(ctx)

	if imagePath == "" {
		return nil
	}

	// keep only the final path element; the document stores public paths
	fileName := path.Base(imagePath)
	filePath := filepath.Join(s.dir, fileName)

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("path", filePath).Msg("error removing avatar file")
		return fmt.Errorf("%w: removing avatar file: %w", ErrStorageUnavailable, err)
	}

	return nil
}
