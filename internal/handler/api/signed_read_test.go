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

type mockReadSigner struct {
	out port.SignedReadOutput
	err error
	in  port.SignedReadInput

	called bool
}

func (m *mockReadSigner) SignedRead(ctx context.Context, in port.SignedReadInput) (port.SignedReadOutput, error) {
	m.called = true
	m.in = in
	return m.out, m.err
}

func validSignedReadBody() []byte {
	raw, _ := json.Marshal(map[string]any{
		"familyId":  "fam-1",
		"objectKey": "families/fam-1/babies/baby-1/photos/abc.jpg",
	})
	return raw
}

func TestSignedReadHandler_Success(t *testing.T) {
	svc := &mockReadSigner{out: port.SignedReadOutput{
		SignedGetURL: "https://storage.example.com/abc.jpg?sig=abc",
		ExpiresAt:    time.Now().Add(time.Minute),
		Variants: []port.VariantOutput{
			{URL: "https://storage.example.com/variants/abc_320.webp?sig=def", Width: 320, Height: 240, SizeBytes: 1000},
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/media/signedRead", bytes.NewReader(validSignedReadBody()))
	rr := httptest.NewRecorder()
	SignedReadHandler(svc)(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("expected no-store on signed URLs, got %q", cc)
	}

	var out port.SignedReadOutput
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.SignedGetURL != svc.out.SignedGetURL {
		t.Errorf("unexpected URL %q", out.SignedGetURL)
	}
	if len(out.Variants) != 1 || out.Variants[0].Width != 320 {
		t.Errorf("unexpected variants %+v", out.Variants)
	}
}

func TestSignedReadHandler_MissingObjectKey(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"familyId": "fam-1"})
	svc := &mockReadSigner{}
	req := httptest.NewRequest(http.MethodPost, "/media/signedRead", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	SignedReadHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if svc.called {
		t.Error("expected the service to not be called")
	}
}

func TestSignedReadHandler_MemberFamilyAllowed(t *testing.T) {
	svc := &mockReadSigner{out: port.SignedReadOutput{SignedGetURL: "https://x", ExpiresAt: time.Now().Add(time.Minute)}}
	req := httptest.NewRequest(http.MethodPost, "/media/signedRead", bytes.NewReader(validSignedReadBody()))
	ctx := context.WithValue(req.Context(), apictx.AuthFamiliesKey, []string{"fam-1", "fam-9"})
	rr := httptest.NewRecorder()
	SignedReadHandler(svc)(rr, req.WithContext(ctx))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestSignedReadHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"not found", mediaSvc.ErrMediaNotFound, http.StatusNotFound},
		{"object gone", mediaSvc.ErrObjectNotFound, http.StatusNotFound},
		{"foreign family", mediaSvc.ErrNotFamilyMedia, http.StatusForbidden},
		{"not finalised", mediaSvc.ErrMediaNotReady, http.StatusConflict},
		{"signer down", mediaSvc.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockReadSigner{err: tc.svcErr}
			req := httptest.NewRequest(http.MethodPost, "/media/signedRead", bytes.NewReader(validSignedReadBody()))
			rr := httptest.NewRecorder()
			SignedReadHandler(svc)(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rr.Code)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}
