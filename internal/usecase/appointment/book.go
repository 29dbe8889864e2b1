package appointment

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ActorID   uint
	TraineeID uint
	TrainerID uint

	Date string
	Time string
}

var ErrNoTrainerSelected = httperr.Validation("Please select a trainer.")

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit audit.Sink
	clock timezone.Clock
}

func NewBook(
	repo domain.Repository,
	audit audit.Sink,
	clock timezone.Clock,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Slot
	// --------------------------------------------------
	at, err := domain.ParseSlot(in.Date, in.Time, uc.clock.Location())
	if err != nil {
		return nil, err
	}

	if in.TrainerID == 0 {
		return nil, ErrNoTrainerSelected
	}

	// --------------------------------------------------
	// Trainer
	// --------------------------------------------------
	if _, err := uc.repo.GetTrainer(ctx, in.TrainerID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Create (availability re-checked inside the transaction)
	// --------------------------------------------------
	ap := domain.New(in.TraineeID, in.TrainerID, at, domain.DefaultConsultationFee)
	if err := uc.repo.CreateIfAvailable(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"trainer_id": in.TrainerID,
			"at":         at,
		},
	})

	return ap, nil
}
