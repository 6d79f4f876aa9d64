package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	fileApp "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/application"
	fileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/application"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type ProfileHandler struct {
	service     *application.ProfileService
	fileService *fileApp.FileService
}

func NewProfileHandler(service *application.ProfileService, fileService *fileApp.FileService) *ProfileHandler {
	return &ProfileHandler{service: service, fileService: fileService}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			utils.WriteError(w, http.StatusNotFound, "profile not found", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

// Update handles PUT /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req application.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			utils.WriteError(w, http.StatusNotFound, "profile not found", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to update profile", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

// UploadAvatar handles POST /profile/avatar. The image is validated before
// any storage call, normalized to a 500x500 JPEG, and written to a fixed
// per-user key so a re-upload replaces the previous avatar in place.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	current, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			utils.WriteError(w, http.StatusNotFound, "profile not found", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, fileDomain.MaxImageSize+1<<20)
	if err := r.ParseMultipartForm(fileDomain.MaxImageSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "file too large", nil)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	defer file.Close()

	if err := fileDomain.KindImage.Validate(header.Header.Get("Content-Type"), header.Size); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	src, err := imaging.Decode(file)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "could not decode image", err)
		return
	}
	dst := imaging.Fit(src, 500, 500, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "could not encode image", err)
		return
	}

	key := fmt.Sprintf("%s/%s/profile.jpg", fileDomain.BucketUserProfiles, userID)
	url, err := h.fileService.UploadWithKey(r.Context(), buf, key, "image/jpeg")
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to upload avatar", err)
		return
	}

	profile, err := h.service.SetAvatar(r.Context(), userID, url)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to save avatar", err)
		return
	}

	// Earlier avatars carried per-upload keys. When the previous URL
	// points somewhere other than the fixed key, the old object is now
	// orphaned; removal is best effort.
	if old := current.ProfileImageURL; old != nil && *old != url {
		if oldKey, err := h.fileService.GetKeyFromUrl(*old); err == nil && oldKey != key {
			_ = h.fileService.Delete(r.Context(), oldKey)
		}
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}
