package cache

import (
	"context"
	"time"

	"github.com/littlesteps/media-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetSignedRead(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetSignedRead(ctx context.Context, objectKey string, data []byte, validUntil time.Time) {
}

func (n *NoopCache) DeleteSignedRead(ctx context.Context, objectKey string) error { return nil }
