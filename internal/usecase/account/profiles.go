package account

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
)

// Profiles resolves the logged-in identity to its trainee or trainer profile.
type Profiles struct {
	repo   domain.Repository
	photos storage.PhotoStore
}

func NewProfiles(repo domain.Repository, photos storage.PhotoStore) *Profiles {
	return &Profiles{
		repo:   repo,
		photos: photos,
	}
}

func (uc *Profiles) User(ctx context.Context, userID uint) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}

func (uc *Profiles) Trainee(ctx context.Context, userID uint) (*models.Trainee, error) {
	return uc.repo.GetTraineeByUserID(ctx, userID)
}

func (uc *Profiles) Trainer(ctx context.Context, userID uint) (*models.Trainer, error) {
	return uc.repo.GetTrainerByUserID(ctx, userID)
}

type TrainerCard struct {
	Trainer  models.Trainer
	PhotoURL string
}

// Trainers lists every trainer with a loadable photo address when one was uploaded.
func (uc *Profiles) Trainers(ctx context.Context) ([]TrainerCard, error) {
	trainers, err := uc.repo.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]TrainerCard, 0, len(trainers))
	for _, t := range trainers {
		card := TrainerCard{Trainer: t}
		if t.PhotoKey != "" {
			u, err := uc.photos.URL(ctx, t.PhotoKey)
			if err != nil {
				slog.WarnContext(ctx, "trainer photo url", "trainer_id", t.ID, "err", err)
			}
			card.PhotoURL = u
		}
		cards = append(cards, card)
	}
	return cards, nil
}
