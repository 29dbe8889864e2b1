package dashboard

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

const pastAppointmentsShown = 10

type ClientSummary struct {
	Trainee       models.Trainee
	LatestDiet    *models.CarePlan
	LatestWorkout *models.CarePlan
}

type TrainerView struct {
	Trainer  *models.Trainer
	Clients  []ClientSummary
	Upcoming []models.Appointment
	Past     []models.Appointment
	Statuses []appointment.Status
}

type TrainerDashboard struct {
	appointments appointment.Repository
	plans        careplan.Repository
	clock        timezone.Clock
}

func NewTrainerDashboard(
	appointments appointment.Repository,
	plans careplan.Repository,
	clock timezone.Clock,
) *TrainerDashboard {
	return &TrainerDashboard{
		appointments: appointments,
		plans:        plans,
		clock:        clock,
	}
}

func (uc *TrainerDashboard) Execute(
	ctx context.Context,
	trainer *models.Trainer,
) (*TrainerView, error) {

	clients, err := uc.appointments.ListClientsOfTrainer(ctx, trainer.ID)
	if err != nil {
		return nil, err
	}

	view := &TrainerView{
		Trainer:  trainer,
		Clients:  make([]ClientSummary, 0, len(clients)),
		Statuses: appointment.Statuses,
	}

	for _, c := range clients {
		diet, err := uc.plans.Latest(ctx, c.ID, careplan.KindDiet)
		if err != nil {
			return nil, err
		}
		workout, err := uc.plans.Latest(ctx, c.ID, careplan.KindWorkout)
		if err != nil {
			return nil, err
		}
		view.Clients = append(view.Clients, ClientSummary{
			Trainee:       c,
			LatestDiet:    diet,
			LatestWorkout: workout,
		})
	}

	now := uc.clock.Now()

	if view.Upcoming, err = uc.appointments.ListForTrainer(ctx, trainer.ID, appointment.Upcoming(now, 0)); err != nil {
		return nil, err
	}
	if view.Past, err = uc.appointments.ListForTrainer(ctx, trainer.ID, appointment.Past(now, pastAppointmentsShown)); err != nil {
		return nil, err
	}

	return view, nil
}
