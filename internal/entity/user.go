package entity

import "time"

// UserStatus gates whether an account may log in.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// User is a registered account. PasswordHash is the SHA-256 hex digest
// of the plaintext password and never leaves the repository layer.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	FullName         string
	RegistrationDate time.Time
	Status           UserStatus
}

// ActivityType tags one audit-log entry.
type ActivityType string

const (
	ActivityLogin               ActivityType = "LOGIN"
	ActivityLogout              ActivityType = "LOGOUT"
	ActivityAdminLogin          ActivityType = "ADMIN_LOGIN"
	ActivityUserRegistered      ActivityType = "USER_REGISTERED"
	ActivityUserDeleted         ActivityType = "USER_DELETED"
	ActivityAssignmentGenerated ActivityType = "ASSIGNMENT_GENERATED"
)

// UserSession is an authenticated session resolved from a bearer token.
type UserSession struct {
	Token    string
	Username string
	FullName string
	IsAdmin  bool
}

// UserStats aggregates one user's audit-log footprint.
type UserStats struct {
	TotalActivities      int
	AssignmentsGenerated int
	LastActivity         string
}

// RegistrationSummary is the slim view of a user shown in admin listings
// of recent signups.
type RegistrationSummary struct {
	Username         string
	FullName         string
	RegistrationDate time.Time
}

// AdminStatistics is the admin dashboard aggregate.
type AdminStatistics struct {
	TotalUsers          int
	ActiveUsers         int
	TotalAssignments    int
	TotalActivities     int
	RecentRegistrations []RegistrationSummary
}
