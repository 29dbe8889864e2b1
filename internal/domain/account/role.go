package account

import "github.com/BruksfildServices01/gym-scheduler/internal/models"

type Role string

const (
	RoleTrainee Role = "trainee"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// RoleOf derives the role from the identity flags: superusers administer, other staff
// members are trainers, everyone else trains.
func RoleOf(u *models.User) Role {
	switch {
	case u.IsSuperuser:
		return RoleAdmin
	case u.IsStaff:
		return RoleTrainer
	default:
		return RoleTrainee
	}
}

func ParseRole(raw string) (Role, bool) {
	switch r := Role(raw); r {
	case RoleTrainee, RoleTrainer, RoleAdmin:
		return r, true
	}
	return "", false
}

// HomePath is where a freshly logged-in user lands.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin-dashboard/"
	case RoleTrainer:
		return "/trainer/dashboard/"
	case RoleTrainee:
		return "/trainee/dashboard/"
	}
	return "/"
}

// IsStaff mirrors the identity flag both trainers and administrators carry.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleTrainer:
		return true
	case RoleTrainee:
		return false
	}
	return false
}
