package careplan

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, plan *models.CarePlan) error

	// Latest returns the newest plan of the kind, or nil when the trainee has none.
	Latest(ctx context.Context, traineeID uint, kind Kind) (*models.CarePlan, error)

	// List returns plans newest first.
	List(ctx context.Context, traineeID uint, kind Kind) ([]models.CarePlan, error)
}
