package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

// UserRepository defines the interface for account persistence
type UserRepository interface {
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, username string) error
	RecentRegistrations(ctx context.Context, limit int) ([]entity.RegistrationSummary, error)
	Counts(ctx context.Context) (total, active int, err error)
}

var _ UserRepository = &UserPostgres{}

// UserPostgres implements UserRepository using PostgreSQL
type UserPostgres struct {
	db *pgxpool.Pool
}

func NewUserPostgres(db *pgxpool.Pool) *UserPostgres {
	return &UserPostgres{db: db}
}

func (r *UserPostgres) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user ID: %w", err)
	}

	var row userRow
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, email, password_hash, full_name, registration_date, status`,
		userID, user.Username, user.Email, user.PasswordHash, user.FullName, string(user.Status),
	).Scan(&row.ID, &row.Username, &row.Email, &row.PasswordHash, &row.FullName, &row.RegistrationDate, &row.Status)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entity.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return toEntityUser(&row), nil
}

func (r *UserPostgres) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row userRow
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, full_name, registration_date, status
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&row.ID, &row.Username, &row.Email, &row.PasswordHash, &row.FullName, &row.RegistrationDate, &row.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return toEntityUser(&row), nil
}

func (r *UserPostgres) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, email, password_hash, full_name, registration_date, status
		FROM users
		ORDER BY registration_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.ID, &row.Username, &row.Email, &row.PasswordHash, &row.FullName, &row.RegistrationDate, &row.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, toEntityUser(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *UserPostgres) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *UserPostgres) RecentRegistrations(ctx context.Context, limit int) ([]entity.RegistrationSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT username, full_name, registration_date
		FROM users
		ORDER BY registration_date DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent registrations: %w", err)
	}
	defer rows.Close()

	summaries := make([]entity.RegistrationSummary, 0, limit)
	for rows.Next() {
		var s entity.RegistrationSummary
		if err := rows.Scan(&s.Username, &s.FullName, &s.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent registrations: %w", err)
	}

	return summaries, nil
}

func (r *UserPostgres) Counts(ctx context.Context) (total, active int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE status = $1)
		FROM users`,
		string(entity.UserStatusActive),
	).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("count users: %w", err)
	}
	return total, active, nil
}
