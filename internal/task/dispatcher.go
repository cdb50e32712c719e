package task

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/littlesteps/media-go/internal/port"
	"github.com/littlesteps/media-go/internal/uuid"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueGenerateThumbnails(ctx context.Context, id uuid.UUID) error {
	t, err := NewGenerateThumbnailsTask(id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}
