package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Trainer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTrainer(
	ctx context.Context,
	trainerID uint,
) (*models.Trainer, error) {

	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&trainer, trainerID).Error; err != nil {
		return nil, notFound(err)
	}
	return &trainer, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) IsTrainerAvailable(
	ctx context.Context,
	trainerID uint,
	at time.Time,
) (bool, error) {
	return trainerAvailable(r.db.WithContext(ctx), trainerID, at, 0)
}

func (r *AppointmentGormRepository) ListAvailableTrainers(
	ctx context.Context,
	at time.Time,
) ([]models.Trainer, error) {

	busy := r.db.
		Model(&models.Appointment{}).
		Select("trainer_id").
		Where("appointment_date = ? AND status <> ?", at, string(domain.StatusCancelled))

	var trainers []models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id NOT IN (?)", busy).
		Order("id ASC").
		Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

// trainerAvailable counts slot holders other than exceptID at exactly at.
func trainerAvailable(tx *gorm.DB, trainerID uint, at time.Time, exceptID uint) (bool, error) {
	q := tx.
		Model(&models.Appointment{}).
		Where(
			"trainer_id = ? AND appointment_date = ? AND status <> ?",
			trainerID,
			at,
			string(domain.StatusCancelled),
		)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfAvailable(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createIfAvailable(tx, ap)
	})
}

// createIfAvailable must run inside a transaction. The trainer row lock serialises
// bookings for one trainer; the partial unique index catches anything that slips past.
func createIfAvailable(tx *gorm.DB, ap *models.Appointment) error {
	var trainer models.Trainer
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&trainer, ap.TrainerID).Error; err != nil {
		return notFound(err)
	}

	ok, err := trainerAvailable(tx, ap.TrainerID, ap.AppointmentDate, 0)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTrainerUnavailable
	}

	if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrTrainerUnavailable
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetForTrainee(
	ctx context.Context,
	appointmentID uint,
	traineeID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND trainee_id = ?", appointmentID, traineeID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetForTrainer(
	ctx context.Context,
	appointmentID uint,
	trainerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", appointmentID, trainerID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CancelIfUpcoming(
	ctx context.Context,
	appointmentID uint,
	traineeID uint,
	now time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id = ? AND trainee_id = ? AND status <> ? AND appointment_date >= ?",
			appointmentID,
			traineeID,
			string(domain.StatusCancelled),
			now,
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *AppointmentGormRepository) UpdateSchedule(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Status(ap.Status).HoldsSlot() {
			ok, err := trainerAvailable(tx, ap.TrainerID, ap.AppointmentDate, ap.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrTrainerUnavailable
			}
		}

		return tx.
			Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":           ap.Status,
				"appointment_date": ap.AppointmentDate,
				"cancelled_at":     ap.CancelledAt,
			}).Error
	})

	if httperr.IsUniqueViolation(err) {
		return domain.ErrTrainerUnavailable
	}
	return err
}

func (r *AppointmentGormRepository) MarkPaid(
	ctx context.Context,
	ap *models.Appointment,
	bill *models.Billing,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Appointment{}).
			Where("id = ? AND payment_status = ?", ap.ID, false).
			Update("payment_status", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyPaid
		}

		if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
			return err
		}

		ap.PaymentStatus = true
		return nil
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForTrainee(
	ctx context.Context,
	traineeID uint,
	period domain.Period,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := withPeriod(r.db.WithContext(ctx), period).
		Preload("Trainer.User").
		Where("trainee_id = ?", traineeID).
		Find(&apps).Error
	return apps, err
}

func (r *AppointmentGormRepository) ListForTrainer(
	ctx context.Context,
	trainerID uint,
	period domain.Period,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := withPeriod(r.db.WithContext(ctx), period).
		Preload("Trainee.User").
		Where("trainer_id = ?", trainerID).
		Find(&apps).Error
	return apps, err
}

func withPeriod(q *gorm.DB, p domain.Period) *gorm.DB {
	if p.Upcoming {
		q = q.Where("appointment_date >= ?", p.Now).Order("appointment_date ASC")
	} else {
		q = q.Where("appointment_date < ?", p.Now).Order("appointment_date DESC")
	}
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	return q
}

func (r *AppointmentGormRepository) ListClientsOfTrainer(
	ctx context.Context,
	trainerID uint,
) ([]models.Trainee, error) {

	clients := r.db.
		Model(&models.Appointment{}).
		Select("DISTINCT trainee_id").
		Where("trainer_id = ?", trainerID)

	var trainees []models.Trainee
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN (?)", clients).
		Order("id ASC").
		Find(&trainees).Error; err != nil {
		return nil, err
	}
	return trainees, nil
}

func (r *AppointmentGormRepository) CountForTrainee(
	ctx context.Context,
	traineeID uint,
	status domain.Status,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("trainee_id = ?", traineeID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var n int64
	err := q.Count(&n).Error
	return n, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
