package port

import (
	"context"
	"time"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// UploadPresigner creates a pending media record and returns a presigned
// upload target for it.
type UploadPresigner interface {
	PresignUpload(ctx context.Context, in PresignUploadInput) (PresignUploadOutput, error)
}
type PresignUploadInput struct {
	FamilyID         string          `json:"familyId"`
	BabyID           string          `json:"babyId"`
	ContentType      string          `json:"contentType"`
	FileSizeBytes    int64           `json:"fileSizeBytes"`
	MediaType        model.MediaType `json:"mediaType"`
	OriginalFilename string          `json:"originalFilename,omitempty"`
	UploadID         string          `json:"uploadId,omitempty"`
}
type PresignUploadOutput struct {
	ObjectKey       string            `json:"objectKey"`
	SignedPutURL    string            `json:"signedPutUrl"`
	RequiredHeaders map[string]string `json:"requiredHeaders"`
	ExpiresAt       time.Time         `json:"expiresAt"`
}

// ReadSigner returns a time-limited read URL for an object the caller's
// family owns.
type ReadSigner interface {
	SignedRead(ctx context.Context, in SignedReadInput) (SignedReadOutput, error)
}
type SignedReadInput struct {
	FamilyID  string `json:"familyId"`
	ObjectKey string `json:"objectKey"`
}
type SignedReadOutput struct {
	SignedGetURL string          `json:"signedGetUrl"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Variants     []VariantOutput `json:"variants,omitempty"`
}
type VariantOutput struct {
	URL       string `json:"url"`
	SizeBytes int64  `json:"sizeBytes"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// UploadFinaliser verifies the uploaded object and flips the record from
// pending to completed.
type UploadFinaliser interface {
	FinaliseUpload(ctx context.Context, in FinaliseUploadInput) (*model.Media, error)
}
type FinaliseUploadInput struct {
	FamilyID  string `json:"familyId"`
	ObjectKey string `json:"objectKey"`
}

// MediaDeleter deletes a media record, its object and its variants.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// ThumbnailGenerator renders and stores WebP variants for a photo.
type ThumbnailGenerator interface {
	GenerateThumbnails(ctx context.Context, in GenerateThumbnailsInput) error
}
type GenerateThumbnailsInput struct {
	ID     uuid.UUID
	Widths []int
}
