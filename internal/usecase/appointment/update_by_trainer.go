package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type UpdateByTrainerInput struct {
	ActorID       uint
	TrainerID     uint
	AppointmentID uint

	Status      string
	DateTimeRaw string
}

// UpdateResult carries the saved appointment and, when the new date could not be read
// or is already taken, the reason the reschedule was skipped.
type UpdateResult struct {
	Appointment     *models.Appointment
	RescheduleError error
}

type UpdateByTrainer struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewUpdateByTrainer(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *UpdateByTrainer {
	return &UpdateByTrainer{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *UpdateByTrainer) Execute(
	ctx context.Context,
	in UpdateByTrainerInput,
) (*UpdateResult, error) {

	ap, err := uc.repo.GetForTrainer(ctx, in.AppointmentID, in.TrainerID)
	if err != nil {
		return nil, err
	}

	before := *ap
	rescheduleErr := domain.ApplyTrainerUpdate(
		ap,
		in.Status,
		in.DateTimeRaw,
		uc.clock.Location(),
		uc.clock.Now(),
	)

	err = uc.repo.UpdateSchedule(ctx, ap)
	if errors.Is(err, domain.ErrTrainerUnavailable) && !ap.AppointmentDate.Equal(before.AppointmentDate) {
		// the new slot is held: keep the status change on the old date
		ap.AppointmentDate = before.AppointmentDate
		rescheduleErr = err
		err = uc.repo.UpdateSchedule(ctx, ap)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"status_from": before.Status,
			"status_to":   ap.Status,
			"date_from":   before.AppointmentDate,
			"date_to":     ap.AppointmentDate,
		},
	})

	return &UpdateResult{Appointment: ap, RescheduleError: rescheduleErr}, nil
}
