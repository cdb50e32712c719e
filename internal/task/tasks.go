package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeGenerateThumbnails = "media:thumbnails"

type GenerateThumbnailsPayload struct {
	MediaID string `json:"media_id" validate:"required,uuid"`
}

// NewGenerateThumbnailsTask creates an Asynq task for rendering the WebP
// variants of a photo by ID.
func NewGenerateThumbnailsTask(mediaID string) (*asynq.Task, error) {
	p := GenerateThumbnailsPayload{MediaID: mediaID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal generate-thumbnails payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateThumbnails, data), nil
}

// ParseGenerateThumbnailsPayload parses the task payload to GenerateThumbnailsPayload.
func ParseGenerateThumbnailsPayload(t *asynq.Task) (GenerateThumbnailsPayload, error) {
	var p GenerateThumbnailsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return GenerateThumbnailsPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
