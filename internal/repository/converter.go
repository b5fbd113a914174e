package repository

import (
	"time"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// activityTimeLayout is the human-facing timestamp format used in stats
// payloads.
const activityTimeLayout = "2006-01-02 15:04:05"

// userRow mirrors one users row with driver-level column types.
type userRow struct {
	ID               uuid.UUID
	Username         string
	Email            string
	PasswordHash     string
	FullName         string
	RegistrationDate time.Time
	Status           string
}

func toEntityUser(row *userRow) *entity.User {
	return &entity.User{
		ID:               row.ID.String(),
		Username:         row.Username,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		FullName:         row.FullName,
		RegistrationDate: row.RegistrationDate,
		Status:           entity.UserStatus(row.Status),
	}
}

// toLastActivity renders the newest activity timestamp, or "N/A" when
// the user has no activity rows yet.
func toLastActivity(ts pgtype.Timestamptz) string {
	if !ts.Valid {
		return "N/A"
	}
	return ts.Time.Format(activityTimeLayout)
}
