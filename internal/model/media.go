package model

import (
	"time"

	"github.com/littlesteps/media-go/internal/uuid"
)

const (
	MediaStatusPending   = "pending"
	MediaStatusCompleted = "completed"
	MediaStatusFailed    = "failed"
)

// MediaType distinguishes the two kinds of memories a family can store.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

type Media struct {
	ID               uuid.UUID `json:"id"`
	FamilyID         string    `json:"family_id"`
	BabyID           string    `json:"baby_id"`
	ObjectKey        string    `json:"object_key"`
	MediaType        MediaType `json:"media_type"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         *string   `json:"mime_type"`
	SizeBytes        *int64    `json:"size_bytes"`
	Status           string    `json:"status"`
	FailureMessage   *string   `json:"failure_message"`
	Variants         Variants  `json:"variants"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
