package media

import (
	"fmt"
	"time"

	"github.com/littlesteps/media-go/internal/model"
)

const (
	// PresignUploadExpiry bounds how long a signed PUT URL stays usable.
	PresignUploadExpiry = 5 * time.Minute
	// SignedReadExpiry bounds how long a signed GET URL stays usable.
	// Client-side caches must use a strictly shorter TTL.
	SignedReadExpiry = 1 * time.Minute

	MinFileSize = 1
	// MaxPhotoSize is 25 MB, MaxVideoSize 200 MB.
	MaxPhotoSize = 25 * 1024 * 1024
	MaxVideoSize = 200 * 1024 * 1024
)

var allowedPhotoMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

var allowedVideoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
}

func IsMimeTypeAllowed(mediaType model.MediaType, mimeType string) bool {
	switch mediaType {
	case model.MediaTypePhoto:
		return allowedPhotoMimeTypes[mimeType]
	case model.MediaTypeVideo:
		return allowedVideoMimeTypes[mimeType]
	default:
		return false
	}
}

func IsPhoto(mimeType string) bool {
	return allowedPhotoMimeTypes[mimeType]
}

func MaxFileSize(mediaType model.MediaType) int64 {
	if mediaType == model.MediaTypeVideo {
		return MaxVideoSize
	}
	return MaxPhotoSize
}

func MimeTypeToExtension(mimeType string) (string, error) {
	switch mimeType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "video/mp4":
		return ".mp4", nil
	case "video/quicktime":
		return ".mov", nil
	case "video/webm":
		return ".webm", nil
	default:
		return "", fmt.Errorf("unknown mime type %q", mimeType)
	}
}
