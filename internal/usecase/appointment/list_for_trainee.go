package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type TraineeAppointments struct {
	Upcoming []models.Appointment
	Past     []models.Appointment
}

type ListForTrainee struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListForTrainee(repo domain.Repository, clock timezone.Clock) *ListForTrainee {
	return &ListForTrainee{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListForTrainee) Execute(
	ctx context.Context,
	traineeID uint,
) (*TraineeAppointments, error) {

	now := uc.clock.Now()

	upcoming, err := uc.repo.ListForTrainee(ctx, traineeID, domain.Upcoming(now, 0))
	if err != nil {
		return nil, err
	}

	past, err := uc.repo.ListForTrainee(ctx, traineeID, domain.Past(now, 0))
	if err != nil {
		return nil, err
	}

	return &TraineeAppointments{Upcoming: upcoming, Past: past}, nil
}
