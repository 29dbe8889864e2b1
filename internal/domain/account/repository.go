package account

import (
	"context"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

var (
	ErrPasswordMismatch = httperr.Validation("Passwords do not match.")
	ErrUsernameTaken    = httperr.Validation("Username already taken.")
	ErrEmailTaken       = httperr.Validation("Email already registered.")
	ErrInvalidLogin     = httperr.Validation("Enter valid credentials")
	ErrTooManyAttempts  = httperr.Validation("Too many login attempts. Please try again later.")
)

type Repository interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// CreateTrainee and CreateTrainer insert the identity and its profile together.
	CreateTrainee(ctx context.Context, user *models.User, trainee *models.Trainee) error
	CreateTrainer(ctx context.Context, user *models.User, trainer *models.Trainer) error
	CreateUser(ctx context.Context, user *models.User) error

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)

	GetTraineeByUserID(ctx context.Context, userID uint) (*models.Trainee, error)
	GetTrainerByUserID(ctx context.Context, userID uint) (*models.Trainer, error)
	GetTrainee(ctx context.Context, traineeID uint) (*models.Trainee, error)
	GetTrainer(ctx context.Context, trainerID uint) (*models.Trainer, error)

	ListTrainers(ctx context.Context) ([]models.Trainer, error)
}
