package media

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"golang.org/x/net/context"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
)

type thumbnailGeneratorSrv struct {
	repo  port.MediaRepository
	strg  port.Storage
	thumb port.Thumbnailer
	cache port.Cache
}

// compile-time check: *thumbnailGeneratorSrv must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*thumbnailGeneratorSrv)(nil)

func NewThumbnailGenerator(repo port.MediaRepository, strg port.Storage, thumb port.Thumbnailer, cache port.Cache) *thumbnailGeneratorSrv {
	return &thumbnailGeneratorSrv{repo: repo, strg: strg, thumb: thumb, cache: cache}
}

func (s *thumbnailGeneratorSrv) GenerateThumbnails(ctx context.Context, in port.GenerateThumbnailsInput) error {
	media, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if media.MediaType != model.MediaTypePhoto {
		log.Printf("media #%s is a %s, nothing to render", media.ID, media.MediaType)
		return nil
	}
	if media.Status != model.MediaStatusCompleted {
		return fmt.Errorf("media #%s status should be 'completed' to render thumbnails", media.ID)
	}

	file, err := s.strg.GetFile(ctx, media.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed to get file %q: %w", media.ObjectKey, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close reader for file %q", media.ObjectKey)
		}
	}()

	var variants model.Variants
	for _, width := range in.Widths {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("failed to rewind file %q: %w", media.ObjectKey, err)
		}

		res, err := s.thumb.Thumbnail(file, width)
		if err != nil {
			return fmt.Errorf("failed to render width %d for file %q: %w", width, media.ObjectKey, err)
		}

		variantKey := VariantObjectKey(media.ObjectKey, res.Width)
		if err := s.strg.SaveFile(
			ctx,
			variantKey,
			bytes.NewReader(res.Data),
			int64(len(res.Data)),
			map[string]string{"Content-Type": "image/webp"},
		); err != nil {
			return fmt.Errorf("failed to save variant %q: %w", variantKey, err)
		}

		variants = append(variants, model.Variant{
			ObjectKey: variantKey,
			SizeBytes: int64(len(res.Data)),
			Width:     res.Width,
			Height:    res.Height,
		})
	}

	media.Variants = variants
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media #%s: %w", media.ID, err)
	}

	// drop the cached read payload so the next signed read includes the variants
	if err := s.cache.DeleteSignedRead(ctx, media.ObjectKey); err != nil {
		log.Printf("failed to invalidate cache for object %q: %v", media.ObjectKey, err)
	}

	return nil
}
