// Package memory keeps every table in process memory. It backs tests and local demos
// with the same rules the postgres repositories enforce.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type Store struct {
	mu  sync.Mutex
	seq uint

	users        map[uint]models.User
	trainees     map[uint]models.Trainee
	trainers     map[uint]models.Trainer
	appointments map[uint]models.Appointment
	memberships  map[uint]models.Membership
	billings     map[uint]models.Billing
	plans        map[uint]models.CarePlan

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        map[uint]models.User{},
		trainees:     map[uint]models.Trainee{},
		trainers:     map[uint]models.Trainer{},
		appointments: map[uint]models.Appointment{},
		memberships:  map[uint]models.Membership{},
		billings:     map[uint]models.Billing{},
		plans:        map[uint]models.CarePlan{},
		now:          time.Now,
	}
}

func (s *Store) nextID() uint {
	s.seq++
	return s.seq
}

func (s *Store) Accounts() *AccountRepository         { return &AccountRepository{s: s} }
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }
func (s *Store) Memberships() *MembershipRepository   { return &MembershipRepository{s: s} }
func (s *Store) CarePlans() *CarePlanRepository       { return &CarePlanRepository{s: s} }
func (s *Store) Reports() *ReportRepository           { return &ReportRepository{s: s} }

// ===============================
// Inspection helpers for tests
// ===============================

func (s *Store) AllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.users, func(u models.User) uint { return u.ID })
}

func (s *Store) AllTrainees() []models.Trainee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.trainees, func(t models.Trainee) uint { return t.ID })
}

func (s *Store) AllAppointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.appointments, func(a models.Appointment) uint { return a.ID })
}

func (s *Store) AllMemberships() []models.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.memberships, func(m models.Membership) uint { return m.ID })
}

func (s *Store) AllBillings() []models.Billing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.billings, func(b models.Billing) uint { return b.ID })
}

func (s *Store) AllCarePlans() []models.CarePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.plans, func(p models.CarePlan) uint { return p.ID })
}

func sortedValues[T any](m map[uint]T, id func(T) uint) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// ===============================
// Hydration
// ===============================

func (s *Store) trainee(id uint) models.Trainee {
	t := s.trainees[id]
	t.User = s.users[t.UserID]
	return t
}

func (s *Store) trainer(id uint) models.Trainer {
	t := s.trainers[id]
	t.User = s.users[t.UserID]
	return t
}

func (s *Store) appointment(id uint) models.Appointment {
	a := s.appointments[id]
	a.Trainee = s.trainee(a.TraineeID)
	a.Trainer = s.trainer(a.TrainerID)
	return a
}
