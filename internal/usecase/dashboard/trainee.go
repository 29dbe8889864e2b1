package dashboard

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

const profileUpcomingShown = 5

type TraineeView struct {
	Trainee          *models.Trainee
	ActiveMembership *models.Membership

	// Only one of these forms is offered at a time.
	ShowMembershipForm bool
	ShowTrainerForm    bool
	Trainers           []models.Trainer
	Plans              []membership.PlanType
	Durations          []int

	Upcoming     []models.Appointment
	Past         []models.Appointment
	DietPlans    []models.CarePlan
	WorkoutPlans []models.CarePlan
}

type ProfileView struct {
	Trainee          *models.Trainee
	ActiveMembership *models.Membership

	TotalAppointments     int64
	CompletedAppointments int64
	Upcoming              []models.Appointment

	LatestDiet    *models.CarePlan
	LatestWorkout *models.CarePlan
}

type TraineeDashboard struct {
	accounts     account.Repository
	appointments appointment.Repository
	memberships  membership.Repository
	plans        careplan.Repository
	clock        timezone.Clock
}

func NewTraineeDashboard(
	accounts account.Repository,
	appointments appointment.Repository,
	memberships membership.Repository,
	plans careplan.Repository,
	clock timezone.Clock,
) *TraineeDashboard {
	return &TraineeDashboard{
		accounts:     accounts,
		appointments: appointments,
		memberships:  memberships,
		plans:        plans,
		clock:        clock,
	}
}

func (uc *TraineeDashboard) Execute(
	ctx context.Context,
	trainee *models.Trainee,
) (*TraineeView, error) {

	active, err := uc.memberships.GetActive(ctx, trainee.ID)
	if err != nil {
		return nil, err
	}

	view := &TraineeView{
		Trainee:          trainee,
		ActiveMembership: active,
		Plans:            membership.PlanTypes,
		Durations:        membership.Durations,
	}

	switch {
	case active == nil:
		view.ShowMembershipForm = true
	case active.TrainerID == nil:
		view.ShowTrainerForm = true
		if view.Trainers, err = uc.accounts.ListTrainers(ctx); err != nil {
			return nil, err
		}
	}

	now := uc.clock.Now()
	if view.Upcoming, err = uc.appointments.ListForTrainee(ctx, trainee.ID, appointment.Upcoming(now, 0)); err != nil {
		return nil, err
	}
	if view.Past, err = uc.appointments.ListForTrainee(ctx, trainee.ID, appointment.Past(now, 0)); err != nil {
		return nil, err
	}
	if view.DietPlans, err = uc.plans.List(ctx, trainee.ID, careplan.KindDiet); err != nil {
		return nil, err
	}
	if view.WorkoutPlans, err = uc.plans.List(ctx, trainee.ID, careplan.KindWorkout); err != nil {
		return nil, err
	}

	return view, nil
}

func (uc *TraineeDashboard) Profile(
	ctx context.Context,
	trainee *models.Trainee,
) (*ProfileView, error) {

	var (
		view = &ProfileView{Trainee: trainee}
		err  error
	)

	if view.ActiveMembership, err = uc.memberships.GetActive(ctx, trainee.ID); err != nil {
		return nil, err
	}
	if view.TotalAppointments, err = uc.appointments.CountForTrainee(ctx, trainee.ID, ""); err != nil {
		return nil, err
	}
	if view.CompletedAppointments, err = uc.appointments.CountForTrainee(ctx, trainee.ID, appointment.StatusCompleted); err != nil {
		return nil, err
	}

	upcoming := appointment.Upcoming(uc.clock.Now(), profileUpcomingShown)
	if view.Upcoming, err = uc.appointments.ListForTrainee(ctx, trainee.ID, upcoming); err != nil {
		return nil, err
	}
	if view.LatestDiet, err = uc.plans.Latest(ctx, trainee.ID, careplan.KindDiet); err != nil {
		return nil, err
	}
	if view.LatestWorkout, err = uc.plans.Latest(ctx, trainee.ID, careplan.KindWorkout); err != nil {
		return nil, err
	}

	return view, nil
}
