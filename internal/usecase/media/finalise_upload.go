package media

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
)

type uploadFinaliserSrv struct {
	repo       port.MediaRepository
	strg       port.Storage
	dispatcher port.TaskDispatcher
}

// compile-time check: *uploadFinaliserSrv must satisfy port.UploadFinaliser
var _ port.UploadFinaliser = (*uploadFinaliserSrv)(nil)

func NewUploadFinaliser(repo port.MediaRepository, strg port.Storage, dispatcher port.TaskDispatcher) *uploadFinaliserSrv {
	return &uploadFinaliserSrv{repo: repo, strg: strg, dispatcher: dispatcher}
}

func (s *uploadFinaliserSrv) FinaliseUpload(ctx context.Context, in port.FinaliseUploadInput) (*model.Media, error) {
	media, err := s.repo.GetByObjectKey(ctx, in.ObjectKey)
	if err != nil {
		return nil, err
	}
	if media.FamilyID != in.FamilyID {
		return nil, ErrNotFamilyMedia
	}
	if media.Status == model.MediaStatusCompleted {
		return media, nil
	}
	if media.Status != model.MediaStatusPending {
		return nil, errors.New("media status should be 'pending' to be finalised")
	}

	// Cleanup function
	var finalErr error
	defer func() {
		if finalErr != nil {
			if err := s.cleanupFile(media.ObjectKey); err != nil {
				log.Printf("cleanup failed for file %q: %v", media.ObjectKey, err)
			}
			if markErr := s.markAsFailed(ctx, media, finalErr.Error()); markErr != nil {
				log.Printf("markAsFailed failed for file %q: %v", media.ObjectKey, markErr)
			}
		}
	}()

	info, err := s.strg.StatFile(ctx, media.ObjectKey)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			finalErr = fmt.Errorf("uploaded file %q not found", media.ObjectKey)
		} else {
			finalErr = fmt.Errorf("stats for file %q failed: %w", media.ObjectKey, err)
		}
		return nil, finalErr
	}

	if info.SizeBytes < MinFileSize {
		finalErr = fmt.Errorf("file %q too small: %d bytes (min size: %d bytes)", media.ObjectKey, info.SizeBytes, MinFileSize)
		return nil, finalErr
	}
	if info.SizeBytes > MaxFileSize(media.MediaType) {
		finalErr = fmt.Errorf("file %q too large: %d bytes (max size: %d bytes)", media.ObjectKey, info.SizeBytes, MaxFileSize(media.MediaType))
		return nil, finalErr
	}

	if !IsMimeTypeAllowed(media.MediaType, info.ContentType) {
		finalErr = fmt.Errorf("unsupported mime-type %q for file %q", info.ContentType, media.ObjectKey)
		return nil, finalErr
	}

	size := info.SizeBytes
	contentType := info.ContentType
	media.SizeBytes = &size
	media.MimeType = &contentType
	media.Status = model.MediaStatusCompleted
	if err := s.repo.Update(ctx, media); err != nil {
		finalErr = fmt.Errorf("failed updating media: %w", err)
		return nil, finalErr
	}

	if media.MediaType == model.MediaTypePhoto {
		// non-fatal: the photo is usable without its renditions
		if err := s.dispatcher.EnqueueGenerateThumbnails(ctx, media.ID); err != nil {
			log.Printf("failed to enqueue thumbnails for media #%s: %v", media.ID, err)
		}
	}

	return media, nil
}

func (s *uploadFinaliserSrv) cleanupFile(objectKey string) error {
	if err := s.strg.RemoveFile(context.Background(), objectKey); err != nil {
		return err
	}
	return nil
}

func (s *uploadFinaliserSrv) markAsFailed(ctx context.Context, media *model.Media, reason string) error {
	media.Status = model.MediaStatusFailed
	media.FailureMessage = &reason

	if err := s.repo.Update(ctx, media); err != nil {
		return err
	}
	return nil
}
