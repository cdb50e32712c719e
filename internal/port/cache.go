package port

import (
	"context"
	"time"
)

// Cache memoizes signed read URLs per object key so repeated reads within a
// URL's lifetime do not hit the storage signer again.
type Cache interface {
	GetSignedRead(ctx context.Context, objectKey string) ([]byte, error)
	SetSignedRead(ctx context.Context, objectKey string, data []byte, validUntil time.Time)
	DeleteSignedRead(ctx context.Context, objectKey string) error
}
