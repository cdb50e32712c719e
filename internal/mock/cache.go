package mock

import (
	"context"
	"time"

	"github.com/littlesteps/media-go/internal/port"
)

// Cache implements the cache interface for tests.
type Cache struct {
	// stored values
	GetOut []byte

	// captured inputs
	GotKey        string
	GotData       []byte
	GotValidUntil time.Time
	DeletedKeys   []string

	// errors
	GetErr    error
	DeleteErr error

	// call flags
	GetCalled    bool
	SetCalled    bool
	DeleteCalled bool
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetSignedRead(ctx context.Context, objectKey string) ([]byte, error) {
	m.GetCalled = true
	m.GotKey = objectKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetOut, nil
}

func (m *Cache) SetSignedRead(ctx context.Context, objectKey string, data []byte, validUntil time.Time) {
	m.SetCalled = true
	m.GotKey = objectKey
	m.GotData = data
	m.GotValidUntil = validUntil
}

func (m *Cache) DeleteSignedRead(ctx context.Context, objectKey string) error {
	m.DeleteCalled = true
	m.DeletedKeys = append(m.DeletedKeys, objectKey)
	return m.DeleteErr
}
