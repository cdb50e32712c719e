package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
	"github.com/littlesteps/media-go/internal/uuid"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s, at status %q...", media.ID, media.Status)

	const query = `
      INSERT INTO medias
        (id, family_id, baby_id, object_key, media_type, original_filename, mime_type, size_bytes, status, failure_message, variants)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.FamilyID, media.BabyID,
		media.ObjectKey, media.MediaType, media.OriginalFilename,
		media.MimeType, media.SizeBytes, media.Status,
		media.FailureMessage, media.Variants,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) Update(ctx context.Context, media *model.Media) error {
	log.Printf("updating database record for media #%s, with status %q...", media.ID, media.Status)

	const query = `
      UPDATE medias
      SET
        object_key      = ?,
        mime_type       = ?,
        size_bytes      = ?,
        status          = ?,
        failure_message = ?,
        variants        = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ObjectKey,
		media.MimeType,
		media.SizeBytes,
		media.Status,
		media.FailureMessage,
		media.Variants,
		media.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", id)

	const query = `
      SELECT id, family_id, baby_id, object_key, media_type, original_filename, mime_type, size_bytes, status, failure_message, variants, created_at, updated_at
      FROM medias
      WHERE id = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *MediaRepository) GetByObjectKey(ctx context.Context, objectKey string) (*model.Media, error) {
	log.Printf("fetching media %q from the database...", objectKey)

	const query = `
      SELECT id, family_id, baby_id, object_key, media_type, original_filename, mime_type, size_bytes, status, failure_message, variants, created_at, updated_at
      FROM medias
      WHERE object_key = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, objectKey))
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting database record for media #%s...", id)

	const query = `DELETE FROM medias WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *MediaRepository) scanOne(row *sql.Row) (*model.Media, error) {
	var m model.Media
	err := row.Scan(
		&m.ID, &m.FamilyID, &m.BabyID,
		&m.ObjectKey, &m.MediaType, &m.OriginalFilename,
		&m.MimeType, &m.SizeBytes, &m.Status,
		&m.FailureMessage, &m.Variants,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mediaSvc.ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
