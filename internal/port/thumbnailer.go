package port

import "io"

// ThumbnailResult is one encoded rendition of a source photo.
type ThumbnailResult struct {
	Data   []byte
	Width  int
	Height int
}

// Thumbnailer turns a source photo into a WebP rendition at the given width.
type Thumbnailer interface {
	Thumbnail(r io.Reader, width int) (ThumbnailResult, error)
}
