package port

import (
	"context"

	"github.com/littlesteps/media-go/internal/uuid"
)

// TaskDispatcher enqueues background work for the worker process.
type TaskDispatcher interface {
	EnqueueGenerateThumbnails(ctx context.Context, id uuid.UUID) error
}
