package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (r *AccountGormRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *AccountGormRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *AccountGormRepository) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(cond, arg).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) CreateTrainee(
	ctx context.Context,
	user *models.User,
	trainee *models.Trainee,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		trainee.UserID = user.ID
		if err := tx.Omit(clause.Associations).Create(trainee).Error; err != nil {
			return err
		}
		trainee.User = *user
		return nil
	})
}

func (r *AccountGormRepository) CreateTrainer(
	ctx context.Context,
	user *models.User,
	trainer *models.Trainer,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		trainer.UserID = user.ID
		if err := tx.Omit(clause.Associations).Create(trainer).Error; err != nil {
			return err
		}
		trainer.User = *user
		return nil
	})
}

func (r *AccountGormRepository) FindUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *AccountGormRepository) GetTraineeByUserID(
	ctx context.Context,
	userID uint,
) (*models.Trainee, error) {

	var t models.Trainee
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *AccountGormRepository) GetTrainerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Trainer, error) {

	var t models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *AccountGormRepository) GetTrainee(
	ctx context.Context,
	traineeID uint,
) (*models.Trainee, error) {

	var t models.Trainee
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&t, traineeID).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *AccountGormRepository) GetTrainer(
	ctx context.Context,
	trainerID uint,
) (*models.Trainer, error) {

	var t models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&t, trainerID).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *AccountGormRepository) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	var trainers []models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

var _ domain.Repository = (*AccountGormRepository)(nil)
