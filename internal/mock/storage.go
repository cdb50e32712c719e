package mock

import (
	"context"
	"io"
	"time"

	"github.com/littlesteps/media-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut    port.FileInfo
	GetOut         io.ReadSeeker
	ExistsOut      bool
	DownloadURLOut string
	UploadURLOut   string

	// captured inputs
	ObjectKey   string
	TTL         time.Duration
	SavedKeys   []string
	SavedOpts   []map[string]string
	RemovedKeys []string
	SignedKeys  []string

	// errors
	InitBucketErr           error
	GenerateDownloadLinkErr error
	GenerateUploadLinkErr   error
	StatErr                 error
	RemoveErr               error
	GetErr                  error
	SaveErr                 error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	GenerateDownloadLinkCalled bool
	GenerateUploadLinkCalled   bool
	StatCalled                 bool
	RemoveCalled               bool
	GetCalled                  bool
	SaveCalled                 bool
	FileExistsCalled           bool
}

// compile-time check: *Storage must satisfy port.Storage
var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.ObjectKey = objectKey
	m.TTL = expiry
	m.SignedKeys = append(m.SignedKeys, objectKey)
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	if m.DownloadURLOut != "" {
		return m.DownloadURLOut, nil
	}
	return "https://example.com/download/" + objectKey, nil
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalled = true
	m.ObjectKey = objectKey
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	if m.UploadURLOut != "" {
		return m.UploadURLOut, nil
	}
	return "https://example.com/upload", nil
}

func (m *Storage) FileExists(ctx context.Context, objectKey string) (bool, error) {
	m.FileExistsCalled = true
	m.ObjectKey = objectKey
	return m.ExistsOut, m.FileExistsErr
}

func (m *Storage) StatFile(ctx context.Context, objectKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.ObjectKey = objectKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, objectKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, objectKey)
	return m.RemoveErr
}

func (m *Storage) GetFile(ctx context.Context, objectKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.ObjectKey = objectKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return nopReadSeekCloser{m.GetOut}, nil
}

func (m *Storage) SaveFile(ctx context.Context, objectKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKeys = append(m.SavedKeys, objectKey)
	m.SavedOpts = append(m.SavedOpts, opts)
	return m.SaveErr
}

type nopReadSeekCloser struct {
	io.ReadSeeker
}

func (nopReadSeekCloser) Close() error { return nil }
