package appointment

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

type RecordPayment struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewRecordPayment(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *RecordPayment) Execute(
	ctx context.Context,
	actorID uint,
	trainerID uint,
	appointmentID uint,
) (*models.Billing, error) {

	ap, err := uc.repo.GetForTrainer(ctx, appointmentID, trainerID)
	if err != nil {
		return nil, err
	}
	if ap.PaymentStatus {
		return nil, domain.ErrAlreadyPaid
	}

	bill := domain.NewPayment(ap, uc.clock.Now())
	if err := uc.repo.MarkPaid(ctx, ap, bill); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"amount": bill.Amount},
	})

	return bill, nil
}
