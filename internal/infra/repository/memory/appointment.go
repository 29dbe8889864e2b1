package memory

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AppointmentRepository struct {
	s *Store
}

func (r *AppointmentRepository) GetTrainer(_ context.Context, trainerID uint) (*models.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trainers[trainerID]; !ok {
		return nil, httperr.ErrNotFound
	}
	t := r.s.trainer(trainerID)
	return &t, nil
}

func (r *AppointmentRepository) IsTrainerAvailable(_ context.Context, trainerID uint, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.available(trainerID, at, 0), nil
}

// available reports whether no slot-holding appointment other than exceptID sits at at.
func (s *Store) available(trainerID uint, at time.Time, exceptID uint) bool {
	for _, a := range s.appointments {
		if a.ID == exceptID || a.TrainerID != trainerID {
			continue
		}
		if a.AppointmentDate.Equal(at) && domain.Status(a.Status).HoldsSlot() {
			return false
		}
	}
	return true
}

func (r *AppointmentRepository) ListAvailableTrainers(_ context.Context, at time.Time) ([]models.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Trainer
	for _, t := range sortedValues(r.s.trainers, func(t models.Trainer) uint { return t.ID }) {
		if r.s.available(t.ID, at, 0) {
			out = append(out, r.s.trainer(t.ID))
		}
	}
	return out, nil
}

func (r *AppointmentRepository) CreateIfAvailable(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createIfAvailable(ap)
}

func (s *Store) createIfAvailable(ap *models.Appointment) error {
	if _, ok := s.trainers[ap.TrainerID]; !ok {
		return httperr.ErrNotFound
	}
	if !s.available(ap.TrainerID, ap.AppointmentDate, 0) {
		return domain.ErrTrainerUnavailable
	}

	ap.ID = s.nextID()
	ap.CreatedAt = s.now()
	ap.UpdatedAt = ap.CreatedAt
	row := *ap
	row.Trainee, row.Trainer = models.Trainee{}, models.Trainer{}
	s.appointments[ap.ID] = row
	return nil
}

func (r *AppointmentRepository) GetForTrainee(_ context.Context, appointmentID, traineeID uint) (*models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[appointmentID]
	if !ok || a.TraineeID != traineeID {
		return nil, httperr.ErrNotFound
	}
	return &a, nil
}

func (r *AppointmentRepository) GetForTrainer(_ context.Context, appointmentID, trainerID uint) (*models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[appointmentID]
	if !ok || a.TrainerID != trainerID {
		return nil, httperr.ErrNotFound
	}
	return &a, nil
}

func (r *AppointmentRepository) CancelIfUpcoming(_ context.Context, appointmentID, traineeID uint, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[appointmentID]
	if !ok || a.TraineeID != traineeID {
		return false, nil
	}
	if domain.Status(a.Status) == domain.StatusCancelled || a.AppointmentDate.Before(now) {
		return false, nil
	}

	a.Status = string(domain.StatusCancelled)
	a.CancelledAt = &now
	a.UpdatedAt = now
	r.s.appointments[a.ID] = a
	return true, nil
}

func (r *AppointmentRepository) UpdateSchedule(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound
	}
	if domain.Status(ap.Status).HoldsSlot() && !r.s.available(a.TrainerID, ap.AppointmentDate, a.ID) {
		return domain.ErrTrainerUnavailable
	}

	a.Status = ap.Status
	a.AppointmentDate = ap.AppointmentDate
	a.CancelledAt = ap.CancelledAt
	a.UpdatedAt = r.s.now()
	r.s.appointments[a.ID] = a
	return nil
}

func (r *AppointmentRepository) MarkPaid(_ context.Context, ap *models.Appointment, bill *models.Billing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound
	}
	if a.PaymentStatus {
		return domain.ErrAlreadyPaid
	}

	a.PaymentStatus = true
	r.s.appointments[a.ID] = a

	bill.ID = r.s.nextID()
	r.s.billings[bill.ID] = *bill
	ap.PaymentStatus = true
	return nil
}

func (r *AppointmentRepository) ListForTrainee(_ context.Context, traineeID uint, period domain.Period) ([]models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.list(func(a models.Appointment) bool { return a.TraineeID == traineeID }, period), nil
}

func (r *AppointmentRepository) ListForTrainer(_ context.Context, trainerID uint, period domain.Period) ([]models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.list(func(a models.Appointment) bool { return a.TrainerID == trainerID }, period), nil
}

func (s *Store) list(match func(models.Appointment) bool, p domain.Period) []models.Appointment {
	var out []models.Appointment
	for id, a := range s.appointments {
		if !match(a) {
			continue
		}
		if p.Upcoming == a.AppointmentDate.Before(p.Now) {
			continue
		}
		out = append(out, s.appointment(id))
	}

	sort.Slice(out, func(i, j int) bool {
		if p.Upcoming {
			return out[i].AppointmentDate.Before(out[j].AppointmentDate)
		}
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})

	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out
}

func (r *AppointmentRepository) ListClientsOfTrainer(_ context.Context, trainerID uint) ([]models.Trainee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[uint]bool{}
	var out []models.Trainee
	for _, a := range sortedValues(r.s.appointments, func(a models.Appointment) uint { return a.ID }) {
		if a.TrainerID != trainerID || seen[a.TraineeID] {
			continue
		}
		seen[a.TraineeID] = true
		out = append(out, r.s.trainee(a.TraineeID))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AppointmentRepository) CountForTrainee(_ context.Context, traineeID uint, status domain.Status) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, a := range r.s.appointments {
		if a.TraineeID == traineeID && (status == "" || a.Status == string(status)) {
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*AppointmentRepository)(nil)
