package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/repository"
)

const (
	adminFullName           = "System Administrator"
	recentRegistrationLimit = 5
)

type AuthUsecase struct {
	userRepo      repository.UserRepository
	activityRepo  repository.ActivityRepository
	sessions      *cache.Cache
	adminUsername string
	adminPassword string
	logger        *zap.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	sessions *cache.Cache,
	adminUsername string,
	adminPassword string,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		sessions:      sessions,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Login authenticates against the configured admin account first, then
// against registered users. The returned user is nil for admin sessions,
// which have no account row.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (*entity.UserSession, *entity.User, error) {
	username = strings.TrimSpace(username)

	if username == uc.adminUsername && password == uc.adminPassword {
		session := uc.startSession(username, adminFullName, true)
		uc.recordActivity(ctx, username, entity.ActivityAdminLogin, "")
		ctxzap.Info(ctx, "admin logged in", zap.String("username", username))
		return session, nil, nil
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, nil, entity.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("look up user: %w", err)
	}

	if user.Status != entity.UserStatusActive {
		return nil, nil, entity.ErrUserDisabled
	}
	if user.PasswordHash != hashPassword(password) {
		return nil, nil, entity.ErrInvalidCredentials
	}

	session := uc.startSession(user.Username, user.FullName, false)
	uc.recordActivity(ctx, user.Username, entity.ActivityLogin, "")
	ctxzap.Info(ctx, "user logged in", zap.String("username", user.Username))
	return session, user, nil
}

// Logout drops the session behind the token.
func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	session, err := uc.SessionByToken(ctx, token)
	if err != nil {
		return err
	}

	uc.sessions.Delete(token)
	uc.recordActivity(ctx, session.Username, entity.ActivityLogout, "")
	ctxzap.Info(ctx, "user logged out", zap.String("username", session.Username))
	return nil
}

// SessionByToken resolves a bearer token to its session.
func (uc *AuthUsecase) SessionByToken(ctx context.Context, token string) (*entity.UserSession, error) {
	if token == "" {
		return nil, entity.ErrSessionNotFound
	}
	cached, ok := uc.sessions.Get(token)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return cached.(*entity.UserSession), nil
}

// RegisterUser creates an active account with a hashed password.
func (uc *AuthUsecase) RegisterUser(ctx context.Context, username, email, password, fullName string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	fields := []struct{ name, value string }{
		{"username", username},
		{"email", email},
		{"password", password},
		{"full_name", fullName},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s", entity.ErrMissingField, f.name)
		}
	}

	user := entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword(password),
		FullName:     fullName,
		Status:       entity.UserStatusActive,
	}

	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.recordActivity(ctx, username, entity.ActivityUserRegistered,
		fmt.Sprintf("New user registered by admin: %s (%s)", username, fullName))
	ctxzap.Info(ctx, "user registered", zap.String("username", username))
	return created, nil
}

// DeleteUser removes the account.
func (uc *AuthUsecase) DeleteUser(ctx context.Context, username string) error {
	if err := uc.userRepo.Delete(ctx, username); err != nil {
		return err
	}

	uc.recordActivity(ctx, username, entity.ActivityUserDeleted,
		fmt.Sprintf("User deleted by admin: %s", username))
	ctxzap.Info(ctx, "user deleted", zap.String("username", username))
	return nil
}

// ListUsers returns all registered accounts, newest first.
func (uc *AuthUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// UserStats aggregates one user's audit-log footprint.
func (uc *AuthUsecase) UserStats(ctx context.Context, username string) (*entity.UserStats, error) {
	return uc.activityRepo.StatsForUser(ctx, username)
}

// Statistics assembles the admin dashboard aggregate.
func (uc *AuthUsecase) Statistics(ctx context.Context) (*entity.AdminStatistics, error) {
	totalUsers, activeUsers, err := uc.userRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalActivities, totalAssignments, err := uc.activityRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	recent, err := uc.userRepo.RecentRegistrations(ctx, recentRegistrationLimit)
	if err != nil {
		return nil, fmt.Errorf("recent registrations: %w", err)
	}

	return &entity.AdminStatistics{
		TotalUsers:          totalUsers,
		ActiveUsers:         activeUsers,
		TotalAssignments:    totalAssignments,
		TotalActivities:     totalActivities,
		RecentRegistrations: recent,
	}, nil
}

func (uc *AuthUsecase) startSession(username, fullName string, isAdmin bool) *entity.UserSession {
	session := &entity.UserSession{
		Token:    uuid.New().String(),
		Username: username,
		FullName: fullName,
		IsAdmin:  isAdmin,
	}
	uc.sessions.Set(session.Token, session, cache.DefaultExpiration)
	return session
}
