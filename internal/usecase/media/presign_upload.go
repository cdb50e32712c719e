package media

import (
	"context"
	"fmt"
	"time"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
)

type presignUploadSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	genUUID port.UUIDGen
}

// compile-time check: *presignUploadSrv must satisfy port.UploadPresigner
var _ port.UploadPresigner = (*presignUploadSrv)(nil)

func NewUploadPresigner(repo port.MediaRepository, strg port.Storage, genUUID port.UUIDGen) *presignUploadSrv {
	return &presignUploadSrv{repo: repo, strg: strg, genUUID: genUUID}
}

func (s *presignUploadSrv) PresignUpload(ctx context.Context, in port.PresignUploadInput) (port.PresignUploadOutput, error) {
	if !IsMimeTypeAllowed(in.MediaType, in.ContentType) {
		return port.PresignUploadOutput{}, fmt.Errorf("%w: %q for media type %q", ErrUnsupportedMime, in.ContentType, in.MediaType)
	}
	if in.FileSizeBytes > MaxFileSize(in.MediaType) {
		return port.PresignUploadOutput{}, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, in.FileSizeBytes, MaxFileSize(in.MediaType))
	}

	ext, err := MimeTypeToExtension(in.ContentType)
	if err != nil {
		return port.PresignUploadOutput{}, fmt.Errorf("%w: %v", ErrUnsupportedMime, err)
	}

	id := s.genUUID()
	objectKey := fmt.Sprintf("families/%s/babies/%s/%ss/%s%s", in.FamilyID, in.BabyID, in.MediaType, id, ext)

	contentType := in.ContentType
	media := &model.Media{
		ID:               id,
		FamilyID:         in.FamilyID,
		BabyID:           in.BabyID,
		ObjectKey:        objectKey,
		MediaType:        in.MediaType,
		OriginalFilename: in.OriginalFilename,
		MimeType:         &contentType,
		Status:           model.MediaStatusPending,
		Variants:         model.Variants{},
	}

	if err := s.repo.Create(ctx, media); err != nil {
		return port.PresignUploadOutput{}, err
	}

	url, err := s.strg.GeneratePresignedUploadURL(ctx, objectKey, PresignUploadExpiry)
	if err != nil {
		return port.PresignUploadOutput{}, err
	}

	return port.PresignUploadOutput{
		ObjectKey:    objectKey,
		SignedPutURL: url,
		RequiredHeaders: map[string]string{
			"Content-Type": in.ContentType,
		},
		ExpiresAt: time.Now().UTC().Add(PresignUploadExpiry),
	}, nil
}
