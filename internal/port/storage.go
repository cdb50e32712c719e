package port

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a stored object.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage defines object storage operations against the media bucket.
type Storage interface {
	InitBucket() error
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	FileExists(ctx context.Context, objectKey string) (bool, error)
	StatFile(ctx context.Context, objectKey string) (FileInfo, error)
	RemoveFile(ctx context.Context, objectKey string) error
	GetFile(ctx context.Context, objectKey string) (io.ReadSeekCloser, error)
	SaveFile(ctx context.Context, objectKey string, reader io.Reader, fileSize int64, opts map[string]string) error
}
