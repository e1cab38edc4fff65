// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// profileService is the concrete implementation of ProfileService. Profile
// data lives in the JSON document; avatar files live on disk, referenced by
// path only.
type profileService struct {
	userRepository store.UserRepository
	noteRepository store.NoteRepository
	avatarStorage  store.AvatarStorage

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repositories
// and avatar storage.
func NewProfileService(userRepository store.UserRepository, noteRepository store.NoteRepository, avatarStorage store.AvatarStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		avatarStorage:  avatarStorage,
		logger:         logger,
	}
}

// GetProfile returns the user record together with the number of notes the
// user owns.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, int, error) {
	log := logger.FromContext(ctx)

	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, 0, fmt.Errorf("user search by id failed: %w", err)
	}

	totalNotes, err := p.noteRepository.CountNotesByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("note count failed")
		return models.User{}, 0, fmt.Errorf("note count failed: %w", err)
	}

	return foundUser, totalNotes, nil
}

// UpdateName replaces the user's display name. The name must be non-empty.
func (p *profileService) UpdateName(ctx context.Context, userID int64, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("id", userID).Msg("empty profile name provided")
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := p.userRepository.UpdateUserName(ctx, userID, name)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile name update failed")
		return models.User{}, fmt.Errorf("profile name update failed: %w", err)
	}

	return updatedUser, nil
}

// UpdateAvatar stores a new profile image, records its path on the user, and
// removes the previously stored image if there was one. The old file is
// deleted only after the document update succeeds, so a failed update never
// leaves the user pointing at a missing file.
func (p *profileService) UpdateAvatar(ctx context.Context, userID int64, content io.Reader, ext string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	imagePath, err := p.avatarStorage.SaveAvatar(ctx, content, ext)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("avatar save failed")
		return models.User{}, fmt.Errorf("avatar save failed: %w", err)
	}

	updatedUser, err := p.userRepository.UpdateUserProfileImage(ctx, userID, imagePath)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("avatar path update failed")
		// the freshly written file is orphaned otherwise
		if deleteErr := p.avatarStorage.DeleteAvatar(ctx, imagePath); deleteErr != nil {
			log.Err(deleteErr).Str("imagePath", imagePath).Msg("orphaned avatar cleanup failed")
		}
		return models.User{}, fmt.Errorf("avatar path update failed: %w", err)
	}

	if foundUser.ProfileImage != "" {
		if err := p.avatarStorage.DeleteAvatar(ctx, foundUser.ProfileImage); err != nil {
			log.Err(err).Str("imagePath", foundUser.ProfileImage).Msg("previous avatar removal failed")
		}
	}

	return updatedUser, nil
}
