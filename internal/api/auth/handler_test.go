package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ethicallogix/assignment-maker/internal/api/middleware"
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type stubAuthUsecase struct {
	loginUsername string
	loginPassword string
	loginSession  *entity.UserSession
	loginUser     *entity.User
	loginErr      error

	logoutToken string
	logoutErr   error

	registeredUsername string
	registeredEmail    string
	registeredPassword string
	registeredFullName string
	registeredUser     *entity.User
	registerErr        error

	deletedUsername string
	deleteErr       error

	users   []*entity.User
	listErr error

	stats    *entity.UserStats
	statsErr error

	statistics    *entity.AdminStatistics
	statisticsErr error
}

func (s *stubAuthUsecase) Login(_ context.Context, username, password string) (*entity.UserSession, *entity.User, error) {
	s.loginUsername = username
	s.loginPassword = password
	return s.loginSession, s.loginUser, s.loginErr
}

func (s *stubAuthUsecase) Logout(_ context.Context, token string) error {
	s.logoutToken = token
	return s.logoutErr
}

func (s *stubAuthUsecase) RegisterUser(_ context.Context, username, email, password, fullName string) (*entity.User, error) {
	s.registeredUsername = username
	s.registeredEmail = email
	s.registeredPassword = password
	s.registeredFullName = fullName
	return s.registeredUser, s.registerErr
}

func (s *stubAuthUsecase) DeleteUser(_ context.Context, username string) error {
	s.deletedUsername = username
	return s.deleteErr
}

func (s *stubAuthUsecase) ListUsers(_ context.Context) ([]*entity.User, error) {
	return s.users, s.listErr
}

func (s *stubAuthUsecase) UserStats(_ context.Context, _ string) (*entity.UserStats, error) {
	return s.stats, s.statsErr
}

func (s *stubAuthUsecase) Statistics(_ context.Context) (*entity.AdminStatistics, error) {
	return s.statistics, s.statisticsErr
}

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

func newTestRouter(uc *stubAuthUsecase) http.Handler {
	resolver := &stubResolver{sessions: map[string]*entity.UserSession{
		userToken:  {Token: userToken, Username: "jane", FullName: "Jane Doe"},
		adminToken: {Token: adminToken, Username: "admin", FullName: "System Administrator", IsAdmin: true},
	}}

	h := NewHandler(uc)
	r := chi.NewRouter()
	RegisterPublicRoutes(r, h)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(resolver))
		RegisterRoutes(r, h)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			RegisterAdminRoutes(r, h)
		})
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return &buf
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) entity.ErrorResponse {
	t.Helper()
	var resp entity.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestLoginUser(t *testing.T) {
	registered := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	uc := &stubAuthUsecase{
		loginSession: &entity.UserSession{Token: "session-1", Username: "jane", FullName: "Jane Doe"},
		loginUser: &entity.User{
			Username:         "jane",
			Email:            "jane@example.com",
			PasswordHash:     "deadbeef",
			FullName:         "Jane Doe",
			RegistrationDate: registered,
			Status:           entity.UserStatusActive,
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, entity.LoginRequest{
		Username: "jane",
		Password: "secret",
	}))
	rec := doRequest(t, router, req, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "deadbeef") {
		t.Fatal("response leaked the password hash")
	}

	var resp entity.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "session-1" {
		t.Fatalf("token = %q, want %q", resp.Token, "session-1")
	}
	if resp.IsAdmin {
		t.Fatal("is_admin = true, want false")
	}
	if resp.User == nil || resp.User.Email != "jane@example.com" {
		t.Fatalf("user = %+v, want jane@example.com", resp.User)
	}
	if resp.User.RegistrationDate != "2025-03-01 10:30:00" {
		t.Fatalf("registration date = %q, want %q", resp.User.RegistrationDate, "2025-03-01 10:30:00")
	}
	if uc.loginUsername != "jane" || uc.loginPassword != "secret" {
		t.Fatalf("login called with %q/%q", uc.loginUsername, uc.loginPassword)
	}
}

func TestLoginAdminSynthesizesUser(t *testing.T) {
	uc := &stubAuthUsecase{
		loginSession: &entity.UserSession{
			Token:    "session-2",
			Username: "admin",
			FullName: "System Administrator",
			IsAdmin:  true,
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, entity.LoginRequest{
		Username: "admin",
		Password: "admin-secret",
	}))
	rec := doRequest(t, router, req, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp entity.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsAdmin {
		t.Fatal("is_admin = false, want true")
	}
	if resp.User == nil || resp.User.Username != "admin" || resp.User.FullName != "System Administrator" {
		t.Fatalf("user = %+v, want synthesized admin info", resp.User)
	}
	if resp.User.Email != "" {
		t.Fatalf("email = %q, want empty for admin", resp.User.Email)
	}
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"wrong credentials", entity.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{"disabled account", entity.ErrUserDisabled, http.StatusForbidden, "account is disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubAuthUsecase{loginErr: tt.err}
			router := newTestRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, entity.LoginRequest{
				Username: "jane",
				Password: "wrong",
			}))
			rec := doRequest(t, router, req, "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp := decodeError(t, rec); resp.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
		})
	}
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(&stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
	rec := doRequest(t, router, req, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLogout(t *testing.T) {
	uc := &stubAuthUsecase{}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := doRequest(t, router, req, userToken)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp entity.StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("status = %q, want %q", resp.Status, "ok")
	}
	if uc.logoutToken != userToken {
		t.Fatalf("logout token = %q, want %q", uc.logoutToken, userToken)
	}
}

func TestLogoutRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := doRequest(t, router, req, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMyStats(t *testing.T) {
	uc := &stubAuthUsecase{
		stats: &entity.UserStats{
			TotalActivities:      4,
			AssignmentsGenerated: 2,
			LastActivity:         "2025-03-01 10:30:00",
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/users/me/stats", nil)
	rec := doRequest(t, router, req, userToken)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp entity.UserStatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "jane" {
		t.Fatalf("username = %q, want %q", resp.Username, "jane")
	}
	if resp.TotalActivities != 4 || resp.AssignmentsGenerated != 2 {
		t.Fatalf("stats = %+v, want 4 activities and 2 assignments", resp)
	}
	if resp.LastActivity != "2025-03-01 10:30:00" {
		t.Fatalf("last activity = %q", resp.LastActivity)
	}
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"list users", http.MethodGet, "/admin/users"},
		{"register user", http.MethodPost, "/admin/users"},
		{"delete user", http.MethodDelete, "/admin/users/jane"},
		{"statistics", http.MethodGet, "/admin/statistics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubAuthUsecase{})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := doRequest(t, router, req, userToken)

			if rec.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
			}
			if resp := decodeError(t, rec); resp.Message != "admin access required" {
				t.Fatalf("message = %q, want %q", resp.Message, "admin access required")
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	registered := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)
	uc := &stubAuthUsecase{
		users: []*entity.User{
			{
				Username:         "jane",
				Email:            "jane@example.com",
				PasswordHash:     "deadbeef",
				FullName:         "Jane Doe",
				RegistrationDate: registered,
				Status:           entity.UserStatusActive,
			},
			{
				Username:         "sana",
				Email:            "sana@example.com",
				PasswordHash:     "cafebabe",
				FullName:         "Sana Khan",
				RegistrationDate: registered.Add(24 * time.Hour),
				Status:           entity.UserStatusDisabled,
			},
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := doRequest(t, router, req, adminToken)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if strings.Contains(body, "deadbeef") || strings.Contains(body, "cafebabe") {
		t.Fatal("response leaked password hashes")
	}

	var resp entity.UserListResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("users = %d, want 2", len(resp.Users))
	}
	first := resp.Users[0]
	if first.Username != "jane" || first.RegistrationDate != "2025-02-14 09:00:00" || first.Status != "active" {
		t.Fatalf("first user = %+v", first)
	}
	if resp.Users[1].Status != "disabled" {
		t.Fatalf("second user status = %q, want disabled", resp.Users[1].Status)
	}
}

func TestRegisterUser(t *testing.T) {
	uc := &stubAuthUsecase{
		registeredUser: &entity.User{
			Username:         "sana",
			Email:            "sana@example.com",
			FullName:         "Sana Khan",
			RegistrationDate: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
			Status:           entity.UserStatusActive,
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/admin/users", jsonBody(t, entity.RegisterUserRequest{
		Username: "sana",
		Email:    "sana@example.com",
		Password: "secret",
		FullName: "Sana Khan",
	}))
	rec := doRequest(t, router, req, adminToken)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var resp entity.UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "sana" || resp.Status != "active" {
		t.Fatalf("user = %+v", resp)
	}
	if uc.registeredUsername != "sana" || uc.registeredEmail != "sana@example.com" ||
		uc.registeredPassword != "secret" || uc.registeredFullName != "Sana Khan" {
		t.Fatalf("register called with %q %q %q %q",
			uc.registeredUsername, uc.registeredEmail, uc.registeredPassword, uc.registeredFullName)
	}
}

func TestRegisterUserFailures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"duplicate", entity.ErrUserExists, http.StatusConflict, "user already exists"},
		{"missing field", fmt.Errorf("%w: email", entity.ErrMissingField), http.StatusBadRequest, "invalid parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubAuthUsecase{registerErr: tt.err}
			router := newTestRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/admin/users", jsonBody(t, entity.RegisterUserRequest{
				Username: "sana",
			}))
			rec := doRequest(t, router, req, adminToken)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp := decodeError(t, rec); resp.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	uc := &stubAuthUsecase{}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/sana", nil)
	rec := doRequest(t, router, req, adminToken)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp entity.StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "deleted" {
		t.Fatalf("status = %q, want %q", resp.Status, "deleted")
	}
	if uc.deletedUsername != "sana" {
		t.Fatalf("deleted username = %q, want %q", uc.deletedUsername, "sana")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	uc := &stubAuthUsecase{deleteErr: entity.ErrUserNotFound}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/ghost", nil)
	rec := doRequest(t, router, req, adminToken)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if resp := decodeError(t, rec); resp.Message != "user not found" {
		t.Fatalf("message = %q, want %q", resp.Message, "user not found")
	}
}

func TestStatistics(t *testing.T) {
	uc := &stubAuthUsecase{
		statistics: &entity.AdminStatistics{
			TotalUsers:       3,
			ActiveUsers:      2,
			TotalAssignments: 9,
			TotalActivities:  25,
			RecentRegistrations: []entity.RegistrationSummary{
				{
					Username:         "sana",
					FullName:         "Sana Khan",
					RegistrationDate: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/admin/statistics", nil)
	rec := doRequest(t, router, req, adminToken)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp entity.AdminStatisticsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalUsers != 3 || resp.ActiveUsers != 2 || resp.TotalAssignments != 9 || resp.TotalActivities != 25 {
		t.Fatalf("statistics = %+v", resp)
	}
	if len(resp.RecentRegistrations) != 1 {
		t.Fatalf("recent registrations = %d, want 1", len(resp.RecentRegistrations))
	}
	recent := resp.RecentRegistrations[0]
	if recent.Username != "sana" || recent.RegistrationDate != "2025-03-02 08:00:00" {
		t.Fatalf("recent registration = %+v", recent)
	}
}
