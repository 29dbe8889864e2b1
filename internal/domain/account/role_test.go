package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func TestRoleOf(t *testing.T) {
	require.Equal(t, RoleAdmin, RoleOf(&models.User{IsStaff: true, IsSuperuser: true}))
	require.Equal(t, RoleTrainer, RoleOf(&models.User{IsStaff: true}))
	require.Equal(t, RoleTrainee, RoleOf(&models.User{}))
}

func TestHomePath(t *testing.T) {
	require.Equal(t, "/admin-dashboard/", RoleAdmin.HomePath())
	require.Equal(t, "/trainer/dashboard/", RoleTrainer.HomePath())
	require.Equal(t, "/trainee/dashboard/", RoleTrainee.HomePath())
	require.Equal(t, "/", Role("").HomePath())
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("trainer")
	require.True(t, ok)
	require.Equal(t, RoleTrainer, r)
	require.True(t, r.IsStaff())

	_, ok = ParseRole("root")
	require.False(t, ok)
}
