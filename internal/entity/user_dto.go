package entity

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string    `json:"token"`
	User    *UserInfo `json:"user"`
	IsAdmin bool      `json:"is_admin"`
}

// UserInfo is the public projection of a User. It never carries the
// password hash.
type UserInfo struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	RegistrationDate string `json:"registration_date,omitempty"`
	Status           string `json:"status,omitempty"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type UserListResponse struct {
	Users []*UserInfo `json:"users"`
}

type UserStatsResponse struct {
	Username             string `json:"username"`
	TotalActivities      int    `json:"total_activities"`
	AssignmentsGenerated int    `json:"assignments_generated"`
	LastActivity         string `json:"last_activity"`
}

type RegistrationSummaryDTO struct {
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	RegistrationDate string `json:"registration_date"`
}

type AdminStatisticsResponse struct {
	TotalUsers          int                       `json:"total_users"`
	ActiveUsers         int                       `json:"active_users"`
	TotalAssignments    int                       `json:"total_assignments"`
	TotalActivities     int                       `json:"total_activities"`
	RecentRegistrations []*RegistrationSummaryDTO `json:"recent_registrations"`
}
