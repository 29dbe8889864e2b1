package appointment

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	traineeID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForTrainee(ctx, appointmentID, traineeID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := domain.CancelByTrainee(ap, now); err != nil {
		return nil, err
	}

	// the row may have moved since it was read
	changed, err := uc.repo.CancelIfUpcoming(ctx, ap.ID, traineeID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.ErrCannotCancel
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
