package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/littlesteps/media-go/internal/apictx"
)

func TestWithMediaID_ValidUUID(t *testing.T) {
	const id = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

	var gotID string
	r := chi.NewRouter()
	r.With(WithMediaID()).Delete("/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		parsed, ok := apictx.MediaIDFromContext(r.Context())
		if !ok {
			t.Error("expected the ID in context")
		}
		gotID = parsed.String()
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/media/"+id, nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if gotID != id {
		t.Errorf("expected %q, got %q", id, gotID)
	}
}

func TestWithMediaID_InvalidUUID(t *testing.T) {
	r := chi.NewRouter()
	r.With(WithMediaID()).Delete("/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected the handler to not be reached")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/media/not-a-uuid", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
