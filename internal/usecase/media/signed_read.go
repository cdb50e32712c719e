package media

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
)

type readSignerSrv struct {
	repo  port.MediaRepository
	strg  port.Storage
	cache port.Cache
	now   func() time.Time
}

// compile-time check: *readSignerSrv must satisfy port.ReadSigner
var _ port.ReadSigner = (*readSignerSrv)(nil)

func NewReadSigner(repo port.MediaRepository, strg port.Storage, cache port.Cache) *readSignerSrv {
	return &readSignerSrv{repo: repo, strg: strg, cache: cache, now: time.Now}
}

func (s *readSignerSrv) SignedRead(ctx context.Context, in port.SignedReadInput) (port.SignedReadOutput, error) {
	media, err := s.repo.GetByObjectKey(ctx, in.ObjectKey)
	if err != nil {
		return port.SignedReadOutput{}, err
	}
	if media.FamilyID != in.FamilyID {
		return port.SignedReadOutput{}, ErrNotFamilyMedia
	}
	if media.Status != model.MediaStatusCompleted {
		return port.SignedReadOutput{}, ErrMediaNotReady
	}

	// The ownership check above must come first: the cache is keyed by
	// object key alone.
	if raw, err := s.cache.GetSignedRead(ctx, in.ObjectKey); err == nil && raw != nil {
		var out port.SignedReadOutput
		if err := json.Unmarshal(raw, &out); err == nil && s.now().Before(out.ExpiresAt) {
			return out, nil
		}
	} else if err != nil {
		log.Printf("cache lookup failed for object %q: %v", in.ObjectKey, err)
	}

	out, err := s.sign(ctx, media)
	if err != nil {
		return port.SignedReadOutput{}, err
	}

	// only successful signatures get cached
	if data, err := json.Marshal(out); err == nil {
		s.cache.SetSignedRead(ctx, in.ObjectKey, data, out.ExpiresAt)
	}

	return out, nil
}

func (s *readSignerSrv) sign(ctx context.Context, media *model.Media) (port.SignedReadOutput, error) {
	url, err := s.strg.GeneratePresignedDownloadURL(ctx, media.ObjectKey, SignedReadExpiry)
	if err != nil {
		return port.SignedReadOutput{}, err
	}

	out := port.SignedReadOutput{
		SignedGetURL: url,
		ExpiresAt:    s.now().UTC().Add(SignedReadExpiry),
	}

	for _, v := range media.Variants {
		vURL, err := s.strg.GeneratePresignedDownloadURL(ctx, v.ObjectKey, SignedReadExpiry)
		if err != nil {
			// a missing rendition should not block the original
			log.Printf("failed to sign variant %q: %v", v.ObjectKey, err)
			continue
		}
		out.Variants = append(out.Variants, port.VariantOutput{
			URL:       vURL,
			SizeBytes: v.SizeBytes,
			Width:     v.Width,
			Height:    v.Height,
		})
	}

	return out, nil
}

// VariantObjectKey derives the storage key of a photo's WebP rendition at
// the given width.
func VariantObjectKey(objectKey string, width int) string {
	dir, file := path.Split(objectKey)
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)
	return path.Join(dir, "variants", fmt.Sprintf("%s_%d.webp", name, width))
}
