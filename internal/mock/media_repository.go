package mock

import (
	"context"

	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
	"github.com/littlesteps/media-go/internal/uuid"
)

// MediaRepo implements the media repository interface for tests.
type MediaRepo struct {
	// stored values
	MediaOut *model.Media

	// captured inputs
	GotCreated *model.Media
	GotUpdated []*model.Media
	GotID      uuid.UUID
	GotKey     string

	// errors
	CreateErr error
	UpdateErr error
	GetErr    error
	DeleteErr error

	// call flags
	CreateCalled bool
	UpdateCalled bool
	GetCalled    bool
	DeleteCalled bool
}

// compile-time check: *MediaRepo must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepo)(nil)

func (m *MediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.CreateCalled = true
	m.GotCreated = media
	return m.CreateErr
}

func (m *MediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.UpdateCalled = true
	m.GotUpdated = append(m.GotUpdated, media)
	return m.UpdateErr
}

func (m *MediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	m.GetCalled = true
	m.GotID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaOut, nil
}

func (m *MediaRepo) GetByObjectKey(ctx context.Context, objectKey string) (*model.Media, error) {
	m.GetCalled = true
	m.GotKey = objectKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaOut, nil
}

func (m *MediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.GotID = id
	return m.DeleteErr
}
