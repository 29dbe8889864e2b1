package memory

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type MembershipRepository struct {
	s *Store
}

func (r *MembershipRepository) Activate(_ context.Context, m *models.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, prev := range r.s.memberships {
		if prev.TraineeID == m.TraineeID && prev.IsActive {
			prev.IsActive = false
			r.s.memberships[id] = prev
		}
	}

	m.ID = r.s.nextID()
	m.IsActive = true
	m.BillingDate = r.s.now()
	m.CreatedAt = m.BillingDate
	m.UpdatedAt = m.BillingDate
	r.s.memberships[m.ID] = *m
	return nil
}

func (r *MembershipRepository) GetActive(_ context.Context, traineeID uint) (*models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.memberships {
		if m.TraineeID == traineeID && m.IsActive {
			if m.TrainerID != nil {
				t := r.s.trainer(*m.TrainerID)
				m.Trainer = &t
			}
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MembershipRepository) GetForUser(_ context.Context, membershipID, userID uint) (*models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.memberships[membershipID]
	if !ok || r.s.trainees[m.TraineeID].UserID != userID {
		return nil, httperr.ErrNotFound
	}
	return &m, nil
}

func (r *MembershipRepository) AttachTrainer(_ context.Context, membershipID uint, first *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.memberships[membershipID]
	if !ok || !m.IsActive {
		return domain.ErrNoActiveMembership
	}
	if m.TrainerID != nil {
		return domain.ErrTrainerAssigned
	}

	if err := r.s.createIfAvailable(first); err != nil {
		return err
	}

	trainerID, appointmentID := first.TrainerID, first.ID
	m.TrainerID = &trainerID
	m.AppointmentID = &appointmentID
	r.s.memberships[m.ID] = m
	return nil
}

func (r *MembershipRepository) DeactivateEnded(_ context.Context, day time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, m := range r.s.memberships {
		if m.IsActive && m.EndDate.Before(day) {
			m.IsActive = false
			r.s.memberships[id] = m
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*MembershipRepository)(nil)
