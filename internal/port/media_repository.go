package port

import (
	"context"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/uuid"
)

// MediaRepository persists media records.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	Update(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	GetByObjectKey(ctx context.Context, objectKey string) (*model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
