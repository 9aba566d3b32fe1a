package ssrclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthConfig_Apply(t *testing.T) {
	tests := []struct {
		name  string
		auth  *AuthConfig
		check func(*testing.T, *http.Request)
	}{
		{
			"bearer", BearerAuth("tok"),
			func(t *testing.T, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer tok" {
					t.Errorf("Authorization = %q", got)
				}
			},
		},
		{
			"basic", BasicAuth("user", "pass"),
			func(t *testing.T, r *http.Request) {
				u, p, ok := r.BasicAuth()
				if !ok || u != "user" || p != "pass" {
					t.Errorf("basic auth = %q/%q ok=%v", u, p, ok)
				}
			},
		},
		{
			"api key", APIKeyAuth("secret", "X-Token"),
			func(t *testing.T, r *http.Request) {
				if got := r.Header.Get("X-Token"); got != "secret" {
					t.Errorf("X-Token = %q", got)
				}
			},
		},
		{
			"custom", CustomAuth(func(r *http.Request) { r.Header.Set("X-Sig", "v1") }),
			func(t *testing.T, r *http.Request) {
				if got := r.Header.Get("X-Sig"); got != "v1" {
					t.Errorf("X-Sig = %q", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://api.example.com/", nil)
			tt.auth.apply(req)
			tt.check(t, req)
		})
	}
}

func TestBearerFromRequest(t *testing.T) {
	valid := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	expired := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})

	tests := []struct {
		name       string
		authHeader string
		wantToken  string
	}{
		{"valid jwt", "Bearer " + valid, valid},
		{"expired jwt", "Bearer " + expired, ""},
		{"opaque token", "Bearer opaque-session-token", "opaque-session-token"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://app.example.com/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			auth := BearerFromRequest(req)
			if tt.wantToken == "" {
				if auth != nil {
					t.Errorf("expected nil auth, got %+v", auth)
				}
				return
			}
			if auth == nil || auth.Token != tt.wantToken {
				t.Errorf("auth = %+v, want token %q", auth, tt.wantToken)
			}
		})
	}
}

func TestBearerFromRequest_NilRequest(t *testing.T) {
	if BearerFromRequest(nil) != nil {
		t.Error("nil request must yield nil auth")
	}
}
