package membership

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

var (
	ErrNoActiveMembership = httperr.ErrBusiness("no_active_membership")
	ErrTrainerAssigned    = httperr.ErrBusiness("trainer_already_assigned")

	ErrConcurrentActivation = httperr.ErrBusiness("concurrent_activation")
)

type Repository interface {
	// Activate deactivates every active membership of m.TraineeID and inserts m as the
	// only active one, in one transaction.
	Activate(ctx context.Context, m *models.Membership) error

	// GetActive returns the trainee's active membership, or nil when there is none.
	GetActive(ctx context.Context, traineeID uint) (*models.Membership, error)

	GetForUser(ctx context.Context, membershipID uint, userID uint) (*models.Membership, error)

	// AttachTrainer books first (if the trainer is free) and links trainer and
	// appointment to the membership, in one transaction.
	AttachTrainer(ctx context.Context, membershipID uint, first *models.Appointment) error

	// DeactivateEnded switches off active memberships whose end date is before day.
	DeactivateEnded(ctx context.Context, day time.Time) (int64, error)
}
