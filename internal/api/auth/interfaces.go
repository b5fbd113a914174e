package auth

import (
	"context"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*entity.UserSession, *entity.User, error)
	Logout(ctx context.Context, token string) error
	RegisterUser(ctx context.Context, username, email, password, fullName string) (*entity.User, error)
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UserStats(ctx context.Context, username string) (*entity.UserStats, error)
	Statistics(ctx context.Context) (*entity.AdminStatistics, error)
}
