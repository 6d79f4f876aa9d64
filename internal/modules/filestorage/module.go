package filestorage

import (
	"context"
	"fmt"

	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/infrastructure/local"
	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/infrastructure/s3"
	"github.com/TuaBBL/beatbookingslive/internal/shared/infrastructure/config"
)

// Module represents the FileStorage module
type Module struct {
	storage domain.FileStorage
	service *application.FileService
}

// NewModule selects the storage backend from configuration: S3/MinIO when
// enabled, local filesystem otherwise.
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.FileStorage
	var err error

	if cfg.UseS3 {
		storage, err = s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
	} else {
		storage, err = local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	return &Module{
		storage: storage,
		service: application.NewFileService(storage),
	}, nil
}

// Service returns the file service
func (m *Module) Service() *application.FileService {
	return m.service
}
