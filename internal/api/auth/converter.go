package auth

import (
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const registrationTimeLayout = "2006-01-02 15:04:05"

// toUserInfo converts a User to its public projection
func toUserInfo(user *entity.User) *entity.UserInfo {
	return &entity.UserInfo{
		Username:         user.Username,
		Email:            user.Email,
		FullName:         user.FullName,
		RegistrationDate: user.RegistrationDate.Format(registrationTimeLayout),
		Status:           string(user.Status),
	}
}

// toLoginResponse builds the login payload. Admin sessions have no
// account row, so the user block is synthesized from the session.
func toLoginResponse(session *entity.UserSession, user *entity.User) *entity.LoginResponse {
	info := &entity.UserInfo{
		Username: session.Username,
		FullName: session.FullName,
	}
	if user != nil {
		info = toUserInfo(user)
	}

	return &entity.LoginResponse{
		Token:   session.Token,
		User:    info,
		IsAdmin: session.IsAdmin,
	}
}

func toRegistrationSummaryDTO(summary entity.RegistrationSummary) *entity.RegistrationSummaryDTO {
	return &entity.RegistrationSummaryDTO{
		Username:         summary.Username,
		FullName:         summary.FullName,
		RegistrationDate: summary.RegistrationDate.Format(registrationTimeLayout),
	}
}

func toAdminStatisticsResponse(stats *entity.AdminStatistics) *entity.AdminStatisticsResponse {
	recent := make([]*entity.RegistrationSummaryDTO, 0, len(stats.RecentRegistrations))
	for _, summary := range stats.RecentRegistrations {
		recent = append(recent, toRegistrationSummaryDTO(summary))
	}

	return &entity.AdminStatisticsResponse{
		TotalUsers:          stats.TotalUsers,
		ActiveUsers:         stats.ActiveUsers,
		TotalAssignments:    stats.TotalAssignments,
		TotalActivities:     stats.TotalActivities,
		RecentRegistrations: recent,
	}
}
