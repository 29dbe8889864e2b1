package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type Counts struct {
	Trainees            int64
	Trainers            int64
	ActiveMemberships   int64
	PendingAppointments int64
}

type Repository interface {
	Counts(ctx context.Context) (Counts, error)

	// PaidRevenue sums paid billing amounts with billing date in [from, to).
	PaidRevenue(ctx context.Context, from, to time.Time) (float64, error)

	// RecentAppointments returns the latest appointments by appointment date.
	RecentAppointments(ctx context.Context, limit int) ([]models.Appointment, error)
}
