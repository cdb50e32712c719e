package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/littlesteps/media-go/internal/apictx"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/media/signedRead", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestWithAuth_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":      "user-1",
		"families": []string{"fam-1", "fam-2"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	var gotSub string
	var gotFamilies []string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub, _ = apictx.AuthUserIDFromContext(r.Context())
		gotFamilies, _ = apictx.AuthFamiliesFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	WithAuth(testSecret)(next).ServeHTTP(rr, authedRequest(token))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotSub != "user-1" {
		t.Errorf("expected sub user-1, got %q", gotSub)
	}
	if len(gotFamilies) != 2 || gotFamilies[0] != "fam-1" {
		t.Errorf("unexpected families %v", gotFamilies)
	}
}

func TestWithAuth_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected the handler to not be reached")
	})

	rr := httptest.NewRecorder()
	WithAuth(testSecret)(next).ServeHTTP(rr, authedRequest(""))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_WrongSecret(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rr := httptest.NewRecorder()
	WithAuth(testSecret)(http.NotFoundHandler()).ServeHTTP(rr, authedRequest(signed))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rr := httptest.NewRecorder()
	WithAuth(testSecret)(http.NotFoundHandler()).ServeHTTP(rr, authedRequest(token))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_MissingSub(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"families": []string{"fam-1"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rr := httptest.NewRecorder()
	WithAuth(testSecret)(http.NotFoundHandler()).ServeHTTP(rr, authedRequest(token))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_EmptySecretIsPassthrough(t *testing.T) {
	var reached bool
	var hasFamilies bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_, hasFamilies = apictx.AuthFamiliesFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	WithAuth("")(next).ServeHTTP(rr, authedRequest(""))

	if !reached {
		t.Fatal("expected the handler to be reached without auth")
	}
	if hasFamilies {
		t.Error("expected no family scoping in passthrough mode")
	}
}
