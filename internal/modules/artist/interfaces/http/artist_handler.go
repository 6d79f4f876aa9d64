package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	fileApp "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/application"
	fileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type ArtistHandler struct {
	service     *application.ArtistService
	fileService *fileApp.FileService
}

func NewArtistHandler(service *application.ArtistService, fileService *fileApp.FileService) *ArtistHandler {
	return &ArtistHandler{service: service, fileService: fileService}
}

// artistFromContext extracts the caller and rejects non-artist accounts.
func artistFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return uuid.Nil, false
	}
	role, _ := r.Context().Value(middleware.ContextKeyRole).(string)
	if role != string(authDomain.RoleArtist) {
		utils.WriteError(w, http.StatusForbidden, domain.ErrNotAnArtist.Error(), nil)
		return uuid.Nil, false
	}
	return userID, true
}

// GetDraft handles GET /artist/card
func (h *ArtistHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := artistFromContext(w, r)
	if !ok {
		return
	}

	draft, err := h.service.GetDraft(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrBaseProfileIncomplete) {
			utils.WriteError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to load artist card", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, draft)
}

// Submit handles PUT /artist/card
func (h *ArtistHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := artistFromContext(w, r)
	if !ok {
		return
	}

	var req application.SubmitCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.WriteFieldError(w, http.StatusUnprocessableEntity, verr.Error(), verr.Fields)
		case errors.Is(err, domain.ErrBaseProfileIncomplete):
			utils.WriteError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, domain.ErrInvalidCost), errors.Is(err, domain.ErrInvalidCostType):
			utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			utils.WriteError(w, http.StatusInternalServerError, "failed to save artist card", err)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, status, result)
}

// UploadImage handles POST /artist/card/image
func (h *ArtistHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "image", fileDomain.KindImage, fileDomain.BucketArtistImages, fileDomain.MaxImageSize)
}

// UploadGalleryImage handles POST /artist/card/gallery
func (h *ArtistHandler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "image", fileDomain.KindImage, fileDomain.BucketArtistImages, fileDomain.MaxImageSize)
}

// UploadVideo handles POST /artist/card/video
func (h *ArtistHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "video", fileDomain.KindVideo, fileDomain.BucketArtistVideos, fileDomain.MaxVideoSize)
}

// upload validates the multipart file against the kind's ceiling before any
// byte reaches storage and returns the stored file's public URL.
func (h *ArtistHandler) upload(w http.ResponseWriter, r *http.Request, field string, kind fileDomain.Kind, bucket string, maxSize int64) {
	userID, ok := artistFromContext(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "file too large", nil)
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, field+" file is required", nil)
		return
	}
	defer file.Close()

	url, key, err := h.fileService.UploadValidated(r.Context(), file, header, kind, bucket, userID.String())
	if err != nil {
		switch {
		case errors.Is(err, fileDomain.ErrNotAnImage), errors.Is(err, fileDomain.ErrNotAVideo),
			errors.Is(err, fileDomain.ErrImageTooBig), errors.Is(err, fileDomain.ErrVideoTooBig):
			utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			utils.WriteError(w, http.StatusInternalServerError, "failed to upload file", err)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}
