package memory

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// ===============================
// Fixtures
// ===============================

// SeedTrainee stores a trainee identity named username. Fixtures must use unique
// names; a clash panics.
func (s *Store) SeedTrainee(username string) models.Trainee {
	u := &models.User{Username: username, Email: username + "@example.com", FirstName: username}
	t := &models.Trainee{}
	if err := s.Accounts().CreateTrainee(context.Background(), u, t); err != nil {
		panic(fmt.Sprintf("seed trainee %q: %v", username, err))
	}
	return *t
}

func (s *Store) SeedTrainer(username, specialization string) models.Trainer {
	u := &models.User{Username: username, Email: username + "@example.com", FirstName: username, IsStaff: true}
	t := &models.Trainer{Specialization: specialization}
	if err := s.Accounts().CreateTrainer(context.Background(), u, t); err != nil {
		panic(fmt.Sprintf("seed trainer %q: %v", username, err))
	}
	return *t
}

func (s *Store) SeedAdmin(username string) models.User {
	u := &models.User{Username: username, Email: username + "@example.com", IsStaff: true, IsSuperuser: true}
	if err := s.Accounts().CreateUser(context.Background(), u); err != nil {
		panic(fmt.Sprintf("seed admin %q: %v", username, err))
	}
	return *u
}

// SeedAppointment stores ap as given, skipping the availability check, so tests can
// place appointments in the past or in any status.
func (s *Store) SeedAppointment(ap models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = s.nextID()
	ap.Trainee, ap.Trainer = models.Trainee{}, models.Trainer{}
	s.appointments[ap.ID] = ap
	return ap
}
