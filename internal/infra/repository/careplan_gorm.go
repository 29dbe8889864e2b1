package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type CarePlanGormRepository struct {
	db *gorm.DB
}

func NewCarePlanGormRepository(db *gorm.DB) *CarePlanGormRepository {
	return &CarePlanGormRepository{db: db}
}

func (r *CarePlanGormRepository) Create(ctx context.Context, plan *models.CarePlan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(plan).Error
}

func (r *CarePlanGormRepository) Latest(
	ctx context.Context,
	traineeID uint,
	kind domain.Kind,
) (*models.CarePlan, error) {

	var plan models.CarePlan
	err := r.db.WithContext(ctx).
		Where("trainee_id = ? AND kind = ?", traineeID, string(kind)).
		Order("created_at DESC, id DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *CarePlanGormRepository) List(
	ctx context.Context,
	traineeID uint,
	kind domain.Kind,
) ([]models.CarePlan, error) {

	var plans []models.CarePlan
	err := r.db.WithContext(ctx).
		Where("trainee_id = ? AND kind = ?", traineeID, string(kind)).
		Order("created_at DESC, id DESC").
		Find(&plans).Error
	return plans, err
}

var _ domain.Repository = (*CarePlanGormRepository)(nil)
