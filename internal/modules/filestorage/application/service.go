package application

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/domain"
)

// FileService provides high-level file operations
type FileService struct {
	storage domain.FileStorage
}

// NewFileService creates a new file service
func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// UploadValidated checks the kind's MIME-type prefix and size ceiling, then
// uploads under a generated per-owner key. The validation failure is
// returned before any transfer is attempted.
func (s *FileService) UploadValidated(ctx context.Context, file multipart.File, header *multipart.FileHeader, kind domain.Kind, bucket, ownerID string) (string, string, error) {
	contentType := header.Header.Get("Content-Type")
	if err := kind.Validate(contentType, header.Size); err != nil {
		return "", "", err
	}

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s/%s/%s%s", bucket, ownerID, uuid.New().String(), ext)

	url, err := s.UploadWithKey(ctx, file, key, contentType)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// UploadWithKey uploads a file with a specific key
func (s *FileService) UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) (string, error) {
	return s.storage.UploadFile(ctx, key, file, contentType)
}

// Delete deletes a file
func (s *FileService) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteFile(ctx, key)
}

// GetKeyFromUrl extracts the storage key from a URL
func (s *FileService) GetKeyFromUrl(fileUrl string) (string, error) {
	return s.storage.GetKeyFromURL(fileUrl)
}
