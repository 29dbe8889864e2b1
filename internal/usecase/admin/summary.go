package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

const recentAppointmentsShown = 5

type Summary struct {
	report.Counts

	MonthStart     time.Time
	MonthlyRevenue float64

	RecentAppointments []models.Appointment
	GeneratedAt        time.Time
}

type GetSummary struct {
	repo  report.Repository
	clock timezone.Clock
}

func NewGetSummary(repo report.Repository, clock timezone.Clock) *GetSummary {
	return &GetSummary{
		repo:  repo,
		clock: clock,
	}
}

// Execute totals paid billing for the current calendar month in the gym's zone.
func (uc *GetSummary) Execute(ctx context.Context) (*Summary, error) {
	now := uc.clock.Now()
	from, to := timezone.MonthBounds(now)

	counts, err := uc.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.repo.PaidRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	recent, err := uc.repo.RecentAppointments(ctx, recentAppointmentsShown)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Counts:             counts,
		MonthStart:         from,
		MonthlyRevenue:     revenue,
		RecentAppointments: recent,
		GeneratedAt:        now,
	}, nil
}
