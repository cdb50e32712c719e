package worker

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/littlesteps/media-go/internal/port"
	"github.com/littlesteps/media-go/internal/task"
	msuuid "github.com/littlesteps/media-go/internal/uuid"
	"github.com/littlesteps/media-go/internal/validation"
)

// GenerateThumbnailsHandler handles a generate-thumbnails task.
// It validates the incoming payload and delegates the call to the service.
func GenerateThumbnailsHandler(ctx context.Context, p task.GenerateThumbnailsPayload, widths []int, svc port.ThumbnailGenerator) error {
	if err := validation.ValidateStruct(p); err != nil {
		log.Printf("❌  Payload validation failed: %v", err)
		return err
	}

	id := uuid.MustParse(p.MediaID)
	in := port.GenerateThumbnailsInput{ID: msuuid.UUID(id), Widths: widths}
	if err := svc.GenerateThumbnails(ctx, in); err != nil {
		log.Printf("❌  Failed to render thumbnails for media #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully rendered thumbnails for media #%s", id)
	return nil
}
