package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// userRepository is the document-backed implementation of [UserRepository].
// Every method performs a whole-document read (and, for mutations, a
// whole-document write under the store's lock) against the [DocumentStore].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	documents DocumentStore
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// document store and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(documents DocumentStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		documents: documents,
		logger:    logger,
	}
}

// CreateUser appends a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The id is taken from the document's nextUserId counter, which is then
// incremented as part of the same locked update, so concurrent
// registrations cannot observe the same id.
//
// Email uniqueness is deliberately NOT enforced here; the auth service
// pre-checks with [UserRepository.FindUserByEmail] before calling this.
func (r *userRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.documents.Update(ctx, func(doc *models.Document) error {
		created = models.User{
			ID:           doc.NextUserID,
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now(),
		}
		doc.NextUserID++
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error persisting new user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email exactly matches the given
// value. Comparison is case-sensitive by design; see FindUserByID for
// id-based lookup.
//
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	doc, err := r.documents.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, user := range doc.Users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// FindUserByID retrieves the user with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	doc, err := r.documents.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, user := range doc.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// UpdateUserName replaces the display name of the user with the given id
// and persists the document. Returns the updated user or
// [ErrNoUserWasFound] if the id does not exist.
func (r *userRepository) UpdateUserName(ctx context.Context, id int64, name string) (models.User, error) {
	return r.mutateUser(ctx, id, func(user *models.User) {
		user.Name = name
	})
}

// UpdateUserPassword replaces the stored password hash of the user with the
// given id. The hash is opaque to the repository; hashing and verification
// belong to the auth service.
func (r *userRepository) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) (models.User, error) {
	return r.mutateUser(ctx, id, func(user *models.User) {
		user.PasswordHash = passwordHash
	})
}

// UpdateUserProfileImage records the avatar path on the user with the given id.
func (r *userRepository) UpdateUserProfileImage(ctx context.Context, id int64, imagePath string) (models.User, error) {
	return r.mutateUser(ctx, id, func(user *models.User) {
		user.ProfileImage = imagePath
	})
}

// mutateUser locates the user by id inside a locked document update,
// applies mutate in place, and returns the updated record.
func (r *userRepository) mutateUser(ctx context.Context, id int64, mutate func(user *models.User)) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.documents.Update(ctx, func(doc *models.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				mutate(&doc.Users[i])
				updated = doc.Users[i]
				return nil
			}
		}
		return ErrNoUserWasFound
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.mutateUser").Int64("id", id).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}
