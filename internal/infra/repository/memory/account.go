package memory

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.usernameTaken(username), nil
}

func (r *AccountRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.emailTaken(email), nil
}

func (r *AccountRepository) usernameTaken(username string) bool {
	for _, u := range r.s.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (r *AccountRepository) emailTaken(email string) bool {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// insertUser enforces the unique indexes the way postgres would.
func (r *AccountRepository) insertUser(user *models.User) error {
	if r.usernameTaken(user.Username) || r.emailTaken(user.Email) {
		return gorm.ErrDuplicatedKey
	}
	user.ID = r.s.nextID()
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *AccountRepository) CreateUser(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.insertUser(user)
}

func (r *AccountRepository) CreateTrainee(_ context.Context, user *models.User, trainee *models.Trainee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.insertUser(user); err != nil {
		return err
	}
	trainee.ID = r.s.nextID()
	trainee.UserID = user.ID
	trainee.User = *user
	r.s.trainees[trainee.ID] = *trainee
	return nil
}

func (r *AccountRepository) CreateTrainer(_ context.Context, user *models.User, trainer *models.Trainer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.insertUser(user); err != nil {
		return err
	}
	trainer.ID = r.s.nextID()
	trainer.UserID = user.ID
	trainer.User = *user
	r.s.trainers[trainer.ID] = *trainer
	return nil
}

func (r *AccountRepository) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (r *AccountRepository) GetUser(_ context.Context, userID uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &u, nil
}

func (r *AccountRepository) GetTraineeByUserID(_ context.Context, userID uint) (*models.Trainee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.trainees {
		if t.UserID == userID {
			t := r.s.trainee(id)
			return &t, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (r *AccountRepository) GetTrainerByUserID(_ context.Context, userID uint) (*models.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.trainers {
		if t.UserID == userID {
			t := r.s.trainer(id)
			return &t, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (r *AccountRepository) GetTrainee(_ context.Context, traineeID uint) (*models.Trainee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trainees[traineeID]; !ok {
		return nil, httperr.ErrNotFound
	}
	t := r.s.trainee(traineeID)
	return &t, nil
}

func (r *AccountRepository) GetTrainer(_ context.Context, trainerID uint) (*models.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trainers[trainerID]; !ok {
		return nil, httperr.ErrNotFound
	}
	t := r.s.trainer(trainerID)
	return &t, nil
}

func (r *AccountRepository) ListTrainers(_ context.Context) ([]models.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Trainer, 0, len(r.s.trainers))
	for _, t := range sortedValues(r.s.trainers, func(t models.Trainer) uint { return t.ID }) {
		out = append(out, r.s.trainer(t.ID))
	}
	return out, nil
}

var _ domain.Repository = (*AccountRepository)(nil)
