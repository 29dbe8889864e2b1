package membership

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	appointment "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

var ErrNoTrainerSelected = httperr.Validation("Please select a trainer.")

type AssignTrainerInput struct {
	ActorID   uint
	TraineeID uint
	TrainerID uint
}

// AssignTrainer attaches a trainer to the active membership and books the first
// session for the same time tomorrow.
type AssignTrainer struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewAssignTrainer(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *AssignTrainer {
	return &AssignTrainer{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *AssignTrainer) Execute(
	ctx context.Context,
	in AssignTrainerInput,
) (*models.Appointment, error) {

	if in.TrainerID == 0 {
		return nil, ErrNoTrainerSelected
	}

	active, err := uc.repo.GetActive(ctx, in.TraineeID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.ErrNoActiveMembership
	}
	if active.TrainerID != nil {
		return nil, domain.ErrTrainerAssigned
	}

	// slots collide on the exact instant, so seconds are dropped
	at := uc.clock.Now().AddDate(0, 0, 1).Truncate(time.Minute)
	first := appointment.New(in.TraineeID, in.TrainerID, at, active.Amount)

	if err := uc.repo.AttachTrainer(ctx, active.ID, first); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "membership_trainer_assigned",
		Entity:   "membership",
		EntityID: &active.ID,
		Metadata: map[string]any{
			"trainer_id":     in.TrainerID,
			"appointment_id": first.ID,
		},
	})

	return first, nil
}
