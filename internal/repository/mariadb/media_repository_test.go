package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/littlesteps/media-go/internal/model"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
	"github.com/littlesteps/media-go/internal/uuid"
)

var testID = uuid.NewUUID()

func testMedia() *model.Media {
	mime := "image/jpeg"
	size := int64(1024)
	return &model.Media{
		ID:               testID,
		FamilyID:         "fam-1",
		BabyID:           "baby-1",
		ObjectKey:        "families/fam-1/babies/baby-1/photos/abc.jpg",
		MediaType:        model.MediaTypePhoto,
		OriginalFilename: "first-steps.jpg",
		MimeType:         &mime,
		SizeBytes:        &size,
		Status:           model.MediaStatusPending,
		Variants:         model.Variants{},
	}
}

func TestMediaRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)
	m := testMedia()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO medias")).
		WithArgs(
			m.ID,
			m.FamilyID,
			m.BabyID,
			m.ObjectKey,
			m.MediaType,
			m.OriginalFilename,
			m.MimeType,
			m.SizeBytes,
			m.Status,
			m.FailureMessage,
			m.Variants,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), m); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Create_Error(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO medias")).
		WillReturnError(errors.New("duplicate key"))

	if err := repo.Create(context.Background(), testMedia()); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestMediaRepository_Update_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)
	m := testMedia()
	m.Status = model.MediaStatusCompleted

	mock.ExpectExec(regexp.QuoteMeta("UPDATE medias")).
		WithArgs(
			m.ObjectKey,
			m.MimeType,
			m.SizeBytes,
			m.Status,
			m.FailureMessage,
			m.Variants,
			m.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), m); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func mediaRows(m *model.Media) *sqlmock.Rows {
	idVal, _ := m.ID.Value()
	variantsVal, _ := m.Variants.Value()
	return sqlmock.NewRows([]string{
		"id", "family_id", "baby_id", "object_key", "media_type", "original_filename",
		"mime_type", "size_bytes", "status", "failure_message", "variants",
		"created_at", "updated_at",
	}).AddRow(
		idVal, m.FamilyID, m.BabyID, m.ObjectKey, m.MediaType, m.OriginalFilename,
		m.MimeType, m.SizeBytes, m.Status, m.FailureMessage, variantsVal,
		time.Now(), time.Now(),
	)
}

func TestMediaRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)
	m := testMedia()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(m.ID).
		WillReturnRows(mediaRows(m))

	got, err := repo.GetByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if got.ObjectKey != m.ObjectKey || got.FamilyID != m.FamilyID {
		t.Errorf("unexpected record %+v", got)
	}
}

func TestMediaRepository_GetByObjectKey_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)
	m := testMedia()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE object_key = ?")).
		WithArgs(m.ObjectKey).
		WillReturnRows(mediaRows(m))

	got, err := repo.GetByObjectKey(context.Background(), m.ObjectKey)
	if err != nil {
		t.Fatalf("GetByObjectKey() returned unexpected error: %v", err)
	}
	if got.ID != m.ID {
		t.Errorf("expected #%s, got #%s", m.ID, got.ID)
	}
}

func TestMediaRepository_Get_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE object_key = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByObjectKey(context.Background(), "missing")
	if !errors.Is(err, mediaSvc.ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}

func TestMediaRepository_Delete_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMediaRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM medias WHERE id = ?")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), testID); err != nil {
		t.Errorf("Delete() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
