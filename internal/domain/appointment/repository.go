package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

// Period selects either the upcoming side (date >= Now, ascending) or the past side
// (date < Now, descending) of a timeline. Limit 0 means no limit.
type Period struct {
	Upcoming bool
	Now      time.Time
	Limit    int
}

func Upcoming(now time.Time, limit int) Period {
	return Period{Upcoming: true, Now: now, Limit: limit}
}

func Past(now time.Time, limit int) Period {
	return Period{Upcoming: false, Now: now, Limit: limit}
}

type Repository interface {
	// -------- Trainer --------
	GetTrainer(
		ctx context.Context,
		trainerID uint,
	) (*models.Trainer, error)

	// -------- Availability --------
	IsTrainerAvailable(
		ctx context.Context,
		trainerID uint,
		at time.Time,
	) (bool, error)

	ListAvailableTrainers(
		ctx context.Context,
		at time.Time,
	) ([]models.Trainer, error)

	// -------- Appointment (create) --------

	// CreateIfAvailable re-checks the slot and inserts in one transaction.
	// Returns ErrTrainerUnavailable when the slot is taken.
	CreateIfAvailable(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetForTrainee(
		ctx context.Context,
		appointmentID uint,
		traineeID uint,
	) (*models.Appointment, error)

	GetForTrainer(
		ctx context.Context,
		appointmentID uint,
		trainerID uint,
	) (*models.Appointment, error)

	// CancelIfUpcoming flips the status to Cancelled only while the row is still
	// upcoming and not cancelled. Reports whether a row changed.
	CancelIfUpcoming(
		ctx context.Context,
		appointmentID uint,
		traineeID uint,
		now time.Time,
	) (bool, error)

	// UpdateSchedule persists status and date. Returns ErrTrainerUnavailable when the
	// new slot is held by another appointment.
	UpdateSchedule(
		ctx context.Context,
		ap *models.Appointment,
	) error

	MarkPaid(
		ctx context.Context,
		ap *models.Appointment,
		bill *models.Billing,
	) error

	// -------- Listing --------
	ListForTrainee(
		ctx context.Context,
		traineeID uint,
		period Period,
	) ([]models.Appointment, error)

	ListForTrainer(
		ctx context.Context,
		trainerID uint,
		period Period,
	) ([]models.Appointment, error)

	ListClientsOfTrainer(
		ctx context.Context,
		trainerID uint,
	) ([]models.Trainee, error)

	// CountForTrainee counts all appointments, or only those in status when non-empty.
	CountForTrainee(
		ctx context.Context,
		traineeID uint,
		status Status,
	) (int64, error)
}
