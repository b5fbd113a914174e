package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/api/middleware"
	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/pkg/logger"
	"github.com/ethicallogix/assignment-maker/internal/pkg/response"
)

type Handler struct {
	usecase AuthUsecase
}

func NewHandler(usecase AuthUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Login")

	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, user, err := h.usecase.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "login succeeded",
		zap.String("username", session.Username),
		zap.Bool("is_admin", session.IsAdmin),
	)
	response.JSON(w, http.StatusOK, toLoginResponse(session, user))
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Logout")

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if err := h.usecase.Logout(ctx, session.Token); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, entity.StatusResponse{Status: "ok"})
}

// MyStats handles GET /users/me/stats
func (h *Handler) MyStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MyStats")

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	stats, err := h.usecase.UserStats(ctx, session.Username)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, entity.UserStatsResponse{
		Username:             session.Username,
		TotalActivities:      stats.TotalActivities,
		AssignmentsGenerated: stats.AssignmentsGenerated,
		LastActivity:         stats.LastActivity,
	})
}

// ListUsers handles GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListUsers")

	users, err := h.usecase.ListUsers(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	infos := make([]*entity.UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, toUserInfo(user))
	}

	ctxzap.Info(ctx, "users listed", zap.Int("count", len(infos)))
	response.JSON(w, http.StatusOK, entity.UserListResponse{Users: infos})
}

// RegisterUser handles POST /admin/users
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RegisterUser")

	var req entity.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.usecase.RegisterUser(ctx, req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "user registered", zap.String("username", created.Username))
	response.JSON(w, http.StatusCreated, toUserInfo(created))
}

// DeleteUser handles DELETE /admin/users/{username}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := chi.URLParam(r, "username")

	ctx = logger.AddFields(ctx,
		zap.String("target_username", username),
		zap.String("action", "DeleteUser"),
	)

	if err := h.usecase.DeleteUser(ctx, username); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "user deleted")
	response.JSON(w, http.StatusOK, entity.StatusResponse{Status: "deleted"})
}

// Statistics handles GET /admin/statistics
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AdminStatistics")

	stats, err := h.usecase.Statistics(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, toAdminStatisticsResponse(stats))
}

// Helper methods
func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrInvalidCredentials) {
		h.respondError(ctx, w, http.StatusUnauthorized, "invalid username or password", err)
	} else if errors.Is(err, entity.ErrUserDisabled) {
		h.respondError(ctx, w, http.StatusForbidden, "account is disabled", err)
	} else if errors.Is(err, entity.ErrSessionNotFound) {
		h.respondError(ctx, w, http.StatusUnauthorized, "session not found", err)
	} else if errors.Is(err, entity.ErrUserNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "user not found", err)
	} else if errors.Is(err, entity.ErrUserExists) {
		h.respondError(ctx, w, http.StatusConflict, "user already exists", err)
	} else if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
