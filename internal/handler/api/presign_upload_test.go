package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/littlesteps/media-go/internal/apictx"
	"github.com/littlesteps/media-go/internal/port"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
)

type mockPresigner struct {
	out port.PresignUploadOutput
	err error
	in  port.PresignUploadInput

	called bool
}

func (m *mockPresigner) PresignUpload(ctx context.Context, in port.PresignUploadInput) (port.PresignUploadOutput, error) {
	m.called = true
	m.in = in
	return m.out, m.err
}

func validPresignBody() []byte {
	raw, _ := json.Marshal(map[string]any{
		"familyId":      "fam-1",
		"babyId":        "baby-1",
		"contentType":   "image/jpeg",
		"fileSizeBytes": 1024,
		"mediaType":     "photo",
	})
	return raw
}

func TestPresignUploadHandler_Success(t *testing.T) {
	svc := &mockPresigner{out: port.PresignUploadOutput{
		ObjectKey:       "families/fam-1/babies/baby-1/photos/abc.jpg",
		SignedPutURL:    "https://storage.example.com/put?sig=abc",
		RequiredHeaders: map[string]string{"Content-Type": "image/jpeg"},
		ExpiresAt:       time.Now().Add(5 * time.Minute),
	}}

	req := httptest.NewRequest(http.MethodPost, "/media/presignUpload", bytes.NewReader(validPresignBody()))
	rr := httptest.NewRecorder()
	PresignUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var out port.PresignUploadOutput
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.SignedPutURL != "https://storage.example.com/put?sig=abc" {
		t.Errorf("unexpected URL %q", out.SignedPutURL)
	}
	if svc.in.FamilyID != "fam-1" || svc.in.FileSizeBytes != 1024 {
		t.Errorf("unexpected service input %+v", svc.in)
	}
}

func TestPresignUploadHandler_InvalidJSON(t *testing.T) {
	svc := &mockPresigner{}
	req := httptest.NewRequest(http.MethodPost, "/media/presignUpload", strings.NewReader("{nope"))
	rr := httptest.NewRecorder()
	PresignUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if svc.called {
		t.Error("expected the service to not be called")
	}
}

func TestPresignUploadHandler_ValidationErrors(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"familyId":  "fam-1",
		"mediaType": "document",
	})
	svc := &mockPresigner{}
	req := httptest.NewRequest(http.MethodPost, "/media/presignUpload", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	PresignUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "mediaType") {
		t.Errorf("expected field errors in body, got %s", body)
	}
	if svc.called {
		t.Error("expected the service to not be called")
	}
}

func TestPresignUploadHandler_ForeignFamilyForbidden(t *testing.T) {
	svc := &mockPresigner{}
	req := httptest.NewRequest(http.MethodPost, "/media/presignUpload", bytes.NewReader(validPresignBody()))
	ctx := context.WithValue(req.Context(), apictx.AuthFamiliesKey, []string{"fam-2"})
	rr := httptest.NewRecorder()
	PresignUploadHandler(svc)(rr, req.WithContext(ctx))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if svc.called {
		t.Error("expected the service to not be called")
	}
}

func TestPresignUploadHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"unsupported mime", mediaSvc.ErrUnsupportedMime, http.StatusBadRequest},
		{"too large", mediaSvc.ErrFileTooLarge, http.StatusBadRequest},
		{"internal", mediaSvc.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockPresigner{err: tc.svcErr}
			req := httptest.NewRequest(http.MethodPost, "/media/presignUpload", bytes.NewReader(validPresignBody()))
			rr := httptest.NewRecorder()
			PresignUploadHandler(svc)(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rr.Code)
			}
			if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
				t.Errorf("expected no-store on errors, got %q", cc)
			}
		})
	}
}
