package memory

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type ReportRepository struct {
	s *Store
}

func (r *ReportRepository) Counts(_ context.Context) (domain.Counts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := domain.Counts{
		Trainees: int64(len(r.s.trainees)),
		Trainers: int64(len(r.s.trainers)),
	}
	for _, m := range r.s.memberships {
		if m.IsActive {
			c.ActiveMemberships++
		}
	}
	for _, a := range r.s.appointments {
		if a.Status == string(appointment.StatusPending) {
			c.PendingAppointments++
		}
	}
	return c, nil
}

func (r *ReportRepository) PaidRevenue(_ context.Context, from, to time.Time) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var total float64
	for _, b := range r.s.billings {
		if b.IsPaid && !b.BillingDate.Before(from) && b.BillingDate.Before(to) {
			total += b.Amount
		}
	}
	return total, nil
}

func (r *ReportRepository) RecentAppointments(_ context.Context, limit int) ([]models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.Appointment, 0, len(r.s.appointments))
	for id := range r.s.appointments {
		out = append(out, r.s.appointment(id))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ domain.Repository = (*ReportRepository)(nil)
