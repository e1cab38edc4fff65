package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.AvatarStorage
// ─────────────────────────────────────────────

type mockAvatarStorage struct {
	saveAvatarFn   func(ctx context.Context, content io.Reader, ext string) (string, error)
	deleteAvatarFn func(ctx context.Context, imagePath string) error
}

func (m *mockAvatarStorage) SaveAvatar(ctx context.Context, content io.Reader, ext string) (string, error) {
	if m.saveAvatarFn != nil {
		return m.saveAvatarFn(ctx, content, ext)
	}
	return "/uploads/profile_images/generated.png", nil
}

func (m *mockAvatarStorage) DeleteAvatar(ctx context.Context, imagePath string) error {
	if m.deleteAvatarFn != nil {
		return m.deleteAvatarFn(ctx, imagePath)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestProfileService(users *mockUserRepository, notes *mockNoteRepository, avatars *mockAvatarStorage) ProfileService {
	if users == nil {
		users = &mockUserRepository{}
	}
	if notes == nil {
		notes = &mockNoteRepository{}
	}
	if avatars == nil {
		avatars = &mockAvatarStorage{}
	}
	return NewProfileService(users, notes, avatars, logger.Nop())
}

// ─────────────────────────────────────────────
// GetProfile
// ─────────────────────────────────────────────

func TestProfileService_GetProfile_Success(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			assert.Equal(t, int64(1), id)
			return models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	notes := &mockNoteRepository{
		countNotesByUserIDFn: func(_ context.Context, userID int64) (int, error) {
			assert.Equal(t, int64(1), userID)
			return 4, nil
		},
	}
	svc := newTestProfileService(users, notes, nil)

	user, totalNotes, err := svc.GetProfile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 4, totalNotes)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	svc := newTestProfileService(nil, nil, nil)

	_, _, err := svc.GetProfile(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestProfileService_GetProfile_CountError(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id}, nil
		},
	}
	notes := &mockNoteRepository{
		countNotesByUserIDFn: func(_ context.Context, _ int64) (int, error) {
			return 0, errStorage
		},
	}
	svc := newTestProfileService(users, notes, nil)

	_, _, err := svc.GetProfile(context.Background(), 1)

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// UpdateName
// ─────────────────────────────────────────────

func TestProfileService_UpdateName_Success(t *testing.T) {
	users := &mockUserRepository{
		updateUserNameFn: func(_ context.Context, id int64, name string) (models.User, error) {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, "Alice Cooper", name)
			return models.User{ID: id, Name: name}, nil
		},
	}
	svc := newTestProfileService(users, nil, nil)

	updated, err := svc.UpdateName(context.Background(), 1, "Alice Cooper")

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
}

func TestProfileService_UpdateName_Empty(t *testing.T) {
	users := &mockUserRepository{
		updateUserNameFn: func(_ context.Context, _ int64, _ string) (models.User, error) {
			t.Fatal("UpdateUserName must not be called for an empty name")
			return models.User{}, nil
		},
	}
	svc := newTestProfileService(users, nil, nil)

	_, err := svc.UpdateName(context.Background(), 1, "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_UpdateName_UserNotFound(t *testing.T) {
	users := &mockUserRepository{
		updateUserNameFn: func(_ context.Context, _ int64, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestProfileService(users, nil, nil)

	_, err := svc.UpdateName(context.Background(), 404, "Alice")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// UpdateAvatar
// ─────────────────────────────────────────────

func TestProfileService_UpdateAvatar_ReplacesPreviousImage(t *testing.T) {
	const oldPath = "/uploads/profile_images/old.png"
	const newPath = "/uploads/profile_images/new.png"

	var deleted []string
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, ProfileImage: oldPath}, nil
		},
		updateUserProfileImageFn: func(_ context.Context, id int64, imagePath string) (models.User, error) {
			assert.Equal(t, newPath, imagePath)
			return models.User{ID: id, ProfileImage: imagePath}, nil
		},
	}
	avatars := &mockAvatarStorage{
		saveAvatarFn: func(_ context.Context, content io.Reader, ext string) (string, error) {
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "fake-png-bytes", string(data))
			assert.Equal(t, ".png", ext)
			return newPath, nil
		},
		deleteAvatarFn: func(_ context.Context, imagePath string) error {
			deleted = append(deleted, imagePath)
			return nil
		},
	}
	svc := newTestProfileService(users, nil, avatars)

	updated, err := svc.UpdateAvatar(context.Background(), 1, strings.NewReader("fake-png-bytes"), ".png")

	require.NoError(t, err)
	assert.Equal(t, newPath, updated.ProfileImage)
	assert.Equal(t, []string{oldPath}, deleted, "only the previous image must be removed")
}

func TestProfileService_UpdateAvatar_FirstUploadDeletesNothing(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id}, nil
		},
		updateUserProfileImageFn: func(_ context.Context, id int64, imagePath string) (models.User, error) {
			return models.User{ID: id, ProfileImage: imagePath}, nil
		},
	}
	avatars := &mockAvatarStorage{
		deleteAvatarFn: func(_ context.Context, imagePath string) error {
			t.Fatalf("DeleteAvatar must not be called, got %q", imagePath)
			return nil
		},
	}
	svc := newTestProfileService(users, nil, avatars)

	updated, err := svc.UpdateAvatar(context.Background(), 1, strings.NewReader("img"), ".jpg")

	require.NoError(t, err)
	assert.NotEmpty(t, updated.ProfileImage)
}

func TestProfileService_UpdateAvatar_UpdateFailureCleansUpNewFile(t *testing.T) {
	const newPath = "/uploads/profile_images/new.png"

	var deleted []string
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, ProfileImage: "/uploads/profile_images/old.png"}, nil
		},
		updateUserProfileImageFn: func(_ context.Context, _ int64, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	avatars := &mockAvatarStorage{
		saveAvatarFn: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			return newPath, nil
		},
		deleteAvatarFn: func(_ context.Context, imagePath string) error {
			deleted = append(deleted, imagePath)
			return nil
		},
	}
	svc := newTestProfileService(users, nil, avatars)

	_, err := svc.UpdateAvatar(context.Background(), 1, strings.NewReader("img"), ".png")

	require.ErrorIs(t, err, errStorage)
	assert.Equal(t, []string{newPath}, deleted, "the orphaned new file must be removed, the old image kept")
}

func TestProfileService_UpdateAvatar_UserNotFound(t *testing.T) {
	avatars := &mockAvatarStorage{
		saveAvatarFn: func(_ context.Context, _ io.Reader, _ string) (string, error) {
			t.Fatal("SaveAvatar must not be called for an unknown user")
			return "", nil
		},
	}
	svc := newTestProfileService(nil, nil, avatars)

	_, err := svc.UpdateAvatar(context.Background(), 404, strings.NewReader("img"), ".png")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
