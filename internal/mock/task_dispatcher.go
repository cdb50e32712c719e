package mock

import (
	"context"

	"github.com/littlesteps/media-go/internal/port"
	"github.com/littlesteps/media-go/internal/uuid"
)

// Dispatcher implements the task dispatcher interface for tests.
type Dispatcher struct {
	GotID uuid.UUID

	EnqueueErr error

	EnqueueCalled bool
}

// compile-time check: *Dispatcher must satisfy port.TaskDispatcher
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func (m *Dispatcher) EnqueueGenerateThumbnails(ctx context.Context, id uuid.UUID) error {
	m.EnqueueCalled = true
	m.GotID = id
	return m.EnqueueErr
}
