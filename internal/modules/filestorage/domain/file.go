package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Buckets the marketplace writes to. On S3 these are key prefixes inside
// the configured bucket; the names match the storage buckets the web
// client historically used.
const (
	BucketArtistImages = "artist-images"
	BucketArtistVideos = "artist-videos"
	BucketUserProfiles = "user-profiles"
)

// Upload ceilings per kind.
const (
	MaxImageSize = 5 << 20   // 5 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

// Kind classifies an upload slot. The constraints are checked before any
// transfer is attempted; a rejected file never reaches storage.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var (
	ErrNotAnImage  = errors.New("please select an image file")
	ErrNotAVideo   = errors.New("please select a video file")
	ErrImageTooBig = fmt.Errorf("image size must be less than %dMB", MaxImageSize>>20)
	ErrVideoTooBig = fmt.Errorf("video size must be less than %dMB", MaxVideoSize>>20)
	ErrUnknownKind = errors.New("unknown upload kind")
)

// Validate checks the MIME type prefix and size ceiling for the kind.
func (k Kind) Validate(contentType string, size int64) error {
	switch k {
	case KindImage:
		if !strings.HasPrefix(contentType, "image/") {
			return ErrNotAnImage
		}
		if size > MaxImageSize {
			return ErrImageTooBig
		}
	case KindVideo:
		if !strings.HasPrefix(contentType, "video/") {
			return ErrNotAVideo
		}
		if size > MaxVideoSize {
			return ErrVideoTooBig
		}
	default:
		return ErrUnknownKind
	}
	return nil
}

// File represents file metadata
type File struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}
