package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

var (
	testNow   = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	testClock = timezone.FixedClock{At: testNow}
)

func seedAt(store *memory.Store, trainee models.Trainee, trainer models.Trainer, at time.Time, status appointment.Status) models.Appointment {
	return store.SeedAppointment(models.Appointment{
		TraineeID:       trainee.ID,
		TrainerID:       trainer.ID,
		AppointmentDate: at,
		Status:          string(status),
		ConsultationFee: 100,
	})
}

func addPlan(t *testing.T, store *memory.Store, kind careplan.Kind, traineeID uint, details string, at time.Time) {
	t.Helper()
	p, err := careplan.New(kind, traineeID, nil, details)
	require.NoError(t, err)
	p.CreatedAt = at
	require.NoError(t, store.CarePlans().Create(context.Background(), p))
}

func TestTrainerDashboard(t *testing.T) {
	store := memory.NewStore()
	tom := store.SeedTrainer("tom", "strength")
	other := store.SeedTrainer("olga", "yoga")
	tina := store.SeedTrainee("tina")
	tess := store.SeedTrainee("tess")
	stranger := store.SeedTrainee("sam")

	for i := 1; i <= 12; i++ {
		seedAt(store, tina, tom, testNow.AddDate(0, 0, -i), appointment.StatusCompleted)
	}
	next := seedAt(store, tess, tom, testNow.Add(2*time.Hour), appointment.StatusPending)
	later := seedAt(store, tina, tom, testNow.Add(48*time.Hour), appointment.StatusConfirmed)
	seedAt(store, stranger, other, testNow.Add(time.Hour), appointment.StatusPending)

	addPlan(t, store, careplan.KindDiet, tina.ID, "old diet", testNow.Add(-72*time.Hour))
	addPlan(t, store, careplan.KindDiet, tina.ID, "new diet", testNow.Add(-time.Hour))

	view, err := NewTrainerDashboard(store.Appointments(), store.CarePlans(), testClock).
		Execute(context.Background(), &tom)
	require.NoError(t, err)

	require.Len(t, view.Clients, 2)
	require.Equal(t, tina.ID, view.Clients[0].Trainee.ID)
	require.Equal(t, "new diet", view.Clients[0].LatestDiet.PlanDetails)
	require.Nil(t, view.Clients[0].LatestWorkout)
	require.Equal(t, tess.ID, view.Clients[1].Trainee.ID)
	require.Nil(t, view.Clients[1].LatestDiet)

	require.Len(t, view.Upcoming, 2)
	require.Equal(t, next.ID, view.Upcoming[0].ID)
	require.Equal(t, later.ID, view.Upcoming[1].ID)

	require.Len(t, view.Past, 10)
	require.Equal(t, testNow.AddDate(0, 0, -1), view.Past[0].AppointmentDate)
	require.Equal(t, appointment.Statuses, view.Statuses)
}

func TestTraineeDashboardOffersOneFormAtATime(t *testing.T) {
	store := memory.NewStore()
	tina := store.SeedTrainee("tina")
	tom := store.SeedTrainer("tom", "strength")
	ctx := context.Background()

	uc := NewTraineeDashboard(store.Accounts(), store.Appointments(), store.Memberships(), store.CarePlans(), testClock)

	view, err := uc.Execute(ctx, &tina)
	require.NoError(t, err)
	require.Nil(t, view.ActiveMembership)
	require.True(t, view.ShowMembershipForm)
	require.False(t, view.ShowTrainerForm)
	require.NotEmpty(t, view.Plans)
	require.NotEmpty(t, view.Durations)

	m := &models.Membership{
		TraineeID:      tina.ID,
		MembershipType: "gold",
		StartDate:      timezone.Today(testNow),
		EndDate:        timezone.Today(testNow).AddDate(0, 0, 30),
		Amount:         2000,
	}
	require.NoError(t, store.Memberships().Activate(ctx, m))

	view, err = uc.Execute(ctx, &tina)
	require.NoError(t, err)
	require.NotNil(t, view.ActiveMembership)
	require.False(t, view.ShowMembershipForm)
	require.True(t, view.ShowTrainerForm)
	require.Len(t, view.Trainers, 1)

	require.NoError(t, store.Memberships().AttachTrainer(ctx, m.ID, &models.Appointment{
		TraineeID:       tina.ID,
		TrainerID:       tom.ID,
		AppointmentDate: testNow.Add(24 * time.Hour),
		Status:          string(appointment.StatusPending),
		ConsultationFee: 2000,
	}))

	view, err = uc.Execute(ctx, &tina)
	require.NoError(t, err)
	require.False(t, view.ShowMembershipForm)
	require.False(t, view.ShowTrainerForm)
	require.Empty(t, view.Trainers)
	require.Len(t, view.Upcoming, 1)
	require.Empty(t, view.Past)
}

func TestTraineeProfile(t *testing.T) {
	store := memory.NewStore()
	tina := store.SeedTrainee("tina")
	tom := store.SeedTrainer("tom", "strength")

	seedAt(store, tina, tom, testNow.AddDate(0, 0, -3), appointment.StatusCompleted)
	seedAt(store, tina, tom, testNow.AddDate(0, 0, -2), appointment.StatusCancelled)
	for i := 1; i <= 6; i++ {
		seedAt(store, tina, tom, testNow.AddDate(0, 0, i), appointment.StatusPending)
	}
	addPlan(t, store, careplan.KindWorkout, tina.ID, "squats", testNow.Add(-time.Hour))

	uc := NewTraineeDashboard(store.Accounts(), store.Appointments(), store.Memberships(), store.CarePlans(), testClock)
	view, err := uc.Profile(context.Background(), &tina)
	require.NoError(t, err)

	require.EqualValues(t, 8, view.TotalAppointments)
	require.EqualValues(t, 1, view.CompletedAppointments)
	require.Len(t, view.Upcoming, 5)
	require.Equal(t, testNow.AddDate(0, 0, 1), view.Upcoming[0].AppointmentDate)
	require.Nil(t, view.LatestDiet)
	require.Equal(t, "squats", view.LatestWorkout.PlanDetails)
	require.Nil(t, view.ActiveMembership)
}
