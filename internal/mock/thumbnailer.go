package mock

import (
	"io"

	"github.com/littlesteps/media-go/internal/port"
)

// Thumbnailer implements the thumbnailer interface for tests.
type Thumbnailer struct {
	Out port.ThumbnailResult

	GotWidths []int

	ThumbnailErr error

	ThumbnailCalled bool
}

// compile-time check: *Thumbnailer must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*Thumbnailer)(nil)

func (m *Thumbnailer) Thumbnail(r io.Reader, width int) (port.ThumbnailResult, error) {
	m.ThumbnailCalled = true
	m.GotWidths = append(m.GotWidths, width)
	if m.ThumbnailErr != nil {
		return port.ThumbnailResult{}, m.ThumbnailErr
	}
	out := m.Out
	if out.Width == 0 {
		out.Width = width
		out.Height = width * 3 / 4
		out.Data = []byte("webp-bytes")
	}
	return out, nil
}
