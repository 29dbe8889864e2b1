package account

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/throttle"
)

type Login struct {
	repo    domain.Repository
	limiter throttle.Limiter
	audit   audit.Sink
}

func NewLogin(
	repo domain.Repository,
	limiter throttle.Limiter,
	audit audit.Sink,
) *Login {
	return &Login{
		repo:    repo,
		limiter: limiter,
		audit:   audit,
	}
}

// Execute checks the credentials. clientIP scopes the attempt counter together with
// the username.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
	clientIP string,
) (*models.User, error) {

	username = strings.TrimSpace(username)
	key := strings.ToLower(username) + "|" + clientIP

	ok, err := uc.limiter.Hit(ctx, key)
	if err != nil {
		// the throttle store is down: keep logins working
		slog.WarnContext(ctx, "login throttle unavailable", "err", err)
	} else if !ok {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := uc.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidLogin
	}

	if err := uc.limiter.Reset(ctx, key); err != nil {
		slog.WarnContext(ctx, "login throttle reset failed", "err", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
