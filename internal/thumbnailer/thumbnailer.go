package thumbnailer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/chai2010/webp"
	"github.com/littlesteps/media-go/internal/port"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Thumbnailer renders lossy WebP renditions of photos (JPEG, PNG, WebP
// sources) at a requested width, keeping the aspect ratio.
type Thumbnailer struct {
	quality float32
}

// compile-time check: *Thumbnailer must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*Thumbnailer)(nil)

func NewThumbnailer() *Thumbnailer {
	log.Println("initialising thumbnailer...")
	return &Thumbnailer{quality: 80}
}

func (t *Thumbnailer) Thumbnail(r io.Reader, width int) (port.ThumbnailResult, error) {
	if width <= 0 {
		return port.ThumbnailResult{}, fmt.Errorf("thumbnailer: width %d must be positive", width)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return port.ThumbnailResult{}, fmt.Errorf("thumbnailer: failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	// never upscale
	if width > bounds.Dx() {
		width = bounds.Dx()
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	buf := &bytes.Buffer{}
	if err := webp.Encode(buf, dst, &webp.Options{Quality: t.quality}); err != nil {
		return port.ThumbnailResult{}, fmt.Errorf("thumbnailer: failed to encode WebP: %w", err)
	}

	return port.ThumbnailResult{Data: buf.Bytes(), Width: width, Height: height}, nil
}
