package media

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/littlesteps/media-go/internal/apictx"
	"github.com/littlesteps/media-go/internal/port"
	"github.com/littlesteps/media-go/internal/uuid"
)

type deleteMediaSrv struct {
	repo  port.MediaRepository
	cache port.Cache
	strg  port.Storage
}

// compile-time check: *deleteMediaSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*deleteMediaSrv)(nil)

func NewMediaDeleter(repo port.MediaRepository, cache port.Cache, strg port.Storage) *deleteMediaSrv {
	return &deleteMediaSrv{repo: repo, cache: cache, strg: strg}
}

func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// family scoping comes from the auth context; absent context means a
	// trusted system caller
	if _, ok := apictx.AuthFamiliesFromContext(ctx); ok && !apictx.IsFamilyMember(ctx, media.FamilyID) {
		return ErrNotFamilyMedia
	}

	// renditions first, so a partial failure never orphans them
	for _, v := range media.Variants {
		if err := s.strg.RemoveFile(ctx, v.ObjectKey); err != nil && !errors.Is(err, ErrObjectNotFound) {
			log.Printf("failed to remove variant %q: %v", v.ObjectKey, err)
		}
	}

	if err := s.strg.RemoveFile(ctx, media.ObjectKey); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return fmt.Errorf("failed to remove file %q: %w", media.ObjectKey, err)
	}

	if err := s.cache.DeleteSignedRead(ctx, media.ObjectKey); err != nil {
		log.Printf("failed to invalidate cache for object %q: %v", media.ObjectKey, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed deleting media #%s: %w", id, err)
	}

	return nil
}
