package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	appointment "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) Counts(ctx context.Context) (domain.Counts, error) {
	var c domain.Counts
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Trainee{}).Count(&c.Trainees).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Trainer{}).Count(&c.Trainers).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Membership{}).
		Where("is_active").
		Count(&c.ActiveMemberships).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("status = ?", string(appointment.StatusPending)).
		Count(&c.PendingAppointments).Error; err != nil {
		return c, err
	}
	return c, nil
}

func (r *ReportGormRepository) PaidRevenue(
	ctx context.Context,
	from, to time.Time,
) (float64, error) {

	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Billing{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("is_paid AND billing_date >= ? AND billing_date < ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *ReportGormRepository) RecentAppointments(
	ctx context.Context,
	limit int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Trainee.User").
		Preload("Trainer.User").
		Order("appointment_date DESC").
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

var _ domain.Repository = (*ReportGormRepository)(nil)
