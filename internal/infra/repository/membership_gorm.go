package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type MembershipGormRepository struct {
	db *gorm.DB
}

func NewMembershipGormRepository(db *gorm.DB) *MembershipGormRepository {
	return &MembershipGormRepository{db: db}
}

func (r *MembershipGormRepository) Activate(
	ctx context.Context,
	m *models.Membership,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Membership{}).
			Where("trainee_id = ? AND is_active", m.TraineeID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		m.IsActive = true
		return tx.Omit(clause.Associations).Create(m).Error
	})

	// a concurrent activation for the same trainee won the race
	if httperr.IsUniqueViolation(err) {
		return domain.ErrConcurrentActivation
	}
	return err
}

func (r *MembershipGormRepository) GetActive(
	ctx context.Context,
	traineeID uint,
) (*models.Membership, error) {

	var m models.Membership
	err := r.db.WithContext(ctx).
		Preload("Trainer.User").
		Where("trainee_id = ? AND is_active", traineeID).
		Order("id DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipGormRepository) GetForUser(
	ctx context.Context,
	membershipID uint,
	userID uint,
) (*models.Membership, error) {

	owned := r.db.
		Model(&models.Trainee{}).
		Select("id").
		Where("user_id = ?", userID)

	var m models.Membership
	if err := r.db.WithContext(ctx).
		Where("id = ? AND trainee_id IN (?)", membershipID, owned).
		First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *MembershipGormRepository) AttachTrainer(
	ctx context.Context,
	membershipID uint,
	first *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Membership
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active", membershipID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoActiveMembership
			}
			return err
		}
		if m.TrainerID != nil {
			return domain.ErrTrainerAssigned
		}

		if err := createIfAvailable(tx, first); err != nil {
			return err
		}

		return tx.
			Model(&models.Membership{}).
			Where("id = ?", m.ID).
			Updates(map[string]any{
				"trainer_id":     first.TrainerID,
				"appointment_id": first.ID,
			}).Error
	})
}

func (r *MembershipGormRepository) DeactivateEnded(
	ctx context.Context,
	day time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("is_active AND end_date < ?", day).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

var _ domain.Repository = (*MembershipGormRepository)(nil)
