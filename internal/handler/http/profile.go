package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// maxAvatarSize caps profile image uploads at 5 MB.
const maxAvatarSize = 5 << 20

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	foundUser, totalNotes, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user was not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile read")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	profile := foundUser.Profile()
	utils.WriteJSON(w, models.ProfileResponse{
		Success: true,
		User:    &profile,
		Stats:   &models.ProfileStats{TotalNotes: totalNotes},
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateName(ctx, userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: "Name is required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user was not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	profile := updatedUser.Profile()
	utils.WriteJSON(w, models.ProfileResponse{
		Success: true,
		User:    &profile,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: "Current and new passwords are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("new password is too short")
			utils.WriteJSON(w, models.MessageResponse{Message: "Password must be at least 6 characters"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Int64("id", userID).Msg("wrong current password")
			utils.WriteJSON(w, models.MessageResponse{Message: "Current password is incorrect"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password change")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "Password updated"}, http.StatusOK)
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		log.Err(err).Msg("multipart form parsing failed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Image must be smaller than 5MB"}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("profileImage")
	if err != nil {
		log.Err(err).Msg("no profileImage file in request")
		utils.WriteJSON(w, models.MessageResponse{Message: "No image file provided"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		log.Error().Str("contentType", header.Header.Get("Content-Type")).Msg("uploaded file is not an image")
		utils.WriteJSON(w, models.MessageResponse{Message: "Only image files are allowed"}, http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		log.Error().Str("ext", ext).Msg("unsupported image extension")
		utils.WriteJSON(w, models.MessageResponse{Message: "Only image files are allowed"}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateAvatar(ctx, userID, file, ext)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user was not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar upload")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	profile := updatedUser.Profile()
	utils.WriteJSON(w, models.ProfileResponse{
		Success: true,
		User:    &profile,
	}, http.StatusOK)
}
