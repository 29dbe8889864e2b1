package account

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

type CreateAdminInput struct {
	Username string
	Email    string
	Password string
}

// CreateAdmin makes a superuser identity without a trainee or trainer profile.
type CreateAdmin struct {
	repo domain.Repository
}

func NewCreateAdmin(repo domain.Repository) *CreateAdmin {
	return &CreateAdmin{repo: repo}
}

func (uc *CreateAdmin) Execute(ctx context.Context, in CreateAdminInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrMissingUsername
	}
	if in.Password == "" {
		return nil, ErrMissingPassword
	}

	taken, err := uc.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, duplicate(ctx, uc.repo, u, err)
	}
	return u, nil
}
