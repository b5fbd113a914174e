package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

type stubResolver struct {
	sessions map[string]*entity.UserSession
}

func (s *stubResolver) SessionByToken(_ context.Context, token string) (*entity.UserSession, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func TestAuthResolvesSession(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*entity.UserSession{
		"token-1": {Token: "token-1", Username: "jane", FullName: "Jane Doe"},
	}}

	var got *entity.UserSession
	handler := Auth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/assignments/current", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.Username != "jane" {
		t.Fatalf("session in context = %+v, want username jane", got)
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*entity.UserSession{
		"token-1": {Token: "token-1", Username: "jane"},
	}}
	handler := Auth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for unauthenticated requests")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"unknown token", "Bearer nope"},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/assignments/current", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			var body entity.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Message != "authentication required" {
				t.Fatalf("message = %q, want %q", body.Message, "authentication required")
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name    string
		session *entity.UserSession
		want    int
	}{
		{"admin session", &entity.UserSession{Username: "admin", IsAdmin: true}, http.StatusOK},
		{"regular user", &entity.UserSession{Username: "jane"}, http.StatusForbidden},
		{"no session", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.session != nil {
				ctx := context.WithValue(req.Context(), sessionContextKey{}, tt.session)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()
			AdminOnly(next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSessionFromContextMissing(t *testing.T) {
	if _, ok := SessionFromContext(context.Background()); ok {
		t.Fatal("SessionFromContext reported a session on an empty context")
	}
}
