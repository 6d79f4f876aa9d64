package domain

import (
	"context"
	"io"
)

// FileStorage defines the interface for file storage operations.
// Implemented by S3/MinIO and a local-filesystem fallback.
type FileStorage interface {
	// UploadFile uploads a file with the given key and returns the public URL.
	// Uploading to an existing key overwrites it (upsert semantics).
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	// DeleteFile deletes a file by its key
	DeleteFile(ctx context.Context, key string) error

	// GetKeyFromURL extracts the storage key from a public URL
	GetKeyFromURL(url string) (string, error)
}
