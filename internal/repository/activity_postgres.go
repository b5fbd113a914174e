package repository

import (
	"context"
	"fmt"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository defines the interface for audit-log persistence
type ActivityRepository interface {
	Record(ctx context.Context, username string, activityType entity.ActivityType, details string) error
	StatsForUser(ctx context.Context, username string) (*entity.UserStats, error)
	Totals(ctx context.Context) (activities, assignments int, err error)
}

var _ ActivityRepository = &ActivityPostgres{}

// ActivityPostgres implements ActivityRepository using PostgreSQL
type ActivityPostgres struct {
	db *pgxpool.Pool
}

func NewActivityPostgres(db *pgxpool.Pool) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

func (r *ActivityPostgres) Record(ctx context.Context, username string, activityType entity.ActivityType, details string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO activity_log (username, activity_type, details)
		VALUES ($1, $2, $3)`,
		username, string(activityType), details,
	)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (r *ActivityPostgres) StatsForUser(ctx context.Context, username string) (*entity.UserStats, error) {
	var (
		stats entity.UserStats
		last  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE activity_type = $2),
		       max("timestamp")
		FROM activity_log
		WHERE username = $1`,
		username, string(entity.ActivityAssignmentGenerated),
	).Scan(&stats.TotalActivities, &stats.AssignmentsGenerated, &last)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	stats.LastActivity = toLastActivity(last)
	return &stats, nil
}

func (r *ActivityPostgres) Totals(ctx context.Context) (activities, assignments int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE activity_type = $1)
		FROM activity_log`,
		string(entity.ActivityAssignmentGenerated),
	).Scan(&activities, &assignments)
	if err != nil {
		return 0, 0, fmt.Errorf("activity totals: %w", err)
	}
	return activities, assignments, nil
}
