package media

import (
	"testing"

	"github.com/littlesteps/media-go/internal/model"
)

func TestIsMimeTypeAllowed(t *testing.T) {
	tests := []struct {
		mediaType model.MediaType
		mimeType  string
		want      bool
	}{
		{model.MediaTypePhoto, "image/jpeg", true},
		{model.MediaTypePhoto, "image/png", true},
		{model.MediaTypePhoto, "image/webp", true},
		{model.MediaTypePhoto, "video/mp4", false},
		{model.MediaTypePhoto, "application/pdf", false},
		{model.MediaTypeVideo, "video/mp4", true},
		{model.MediaTypeVideo, "video/quicktime", true},
		{model.MediaTypeVideo, "image/jpeg", false},
		{model.MediaType("document"), "application/pdf", false},
	}
	for _, tc := range tests {
		if got := IsMimeTypeAllowed(tc.mediaType, tc.mimeType); got != tc.want {
			t.Errorf("IsMimeTypeAllowed(%q, %q) = %v, want %v", tc.mediaType, tc.mimeType, got, tc.want)
		}
	}
}

func TestMimeTypeToExtension(t *testing.T) {
	ext, err := MimeTypeToExtension("image/jpeg")
	if err != nil || ext != ".jpg" {
		t.Errorf("expected .jpg, got %q (%v)", ext, err)
	}
	if _, err := MimeTypeToExtension("application/zip"); err == nil {
		t.Error("expected error for unknown mime type")
	}
}

func TestMaxFileSize(t *testing.T) {
	if MaxFileSize(model.MediaTypePhoto) != MaxPhotoSize {
		t.Error("unexpected photo limit")
	}
	if MaxFileSize(model.MediaTypeVideo) != MaxVideoSize {
		t.Error("unexpected video limit")
	}
}
