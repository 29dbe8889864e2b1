package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		clock: clock,
	}
}

type Availability struct {
	At       time.Time
	Trainers []models.Trainer
}

// Execute parses the form's date and time in the gym zone and lists the trainers
// without a slot-holding appointment at that exact instant.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	clock string,
) (*Availability, error) {

	at, err := domain.ParseSlot(date, clock, uc.clock.Location())
	if err != nil {
		return nil, err
	}

	trainers, err := uc.repo.ListAvailableTrainers(ctx, at)
	if err != nil {
		return nil, err
	}

	return &Availability{At: at, Trainers: trainers}, nil
}
