package membership

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

// ExpireMemberships switches off memberships that ended before today.
type ExpireMemberships struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewExpireMemberships(repo domain.Repository, clock timezone.Clock) *ExpireMemberships {
	return &ExpireMemberships{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ExpireMemberships) Execute(ctx context.Context) (int64, error) {
	today := timezone.Today(uc.clock.Now())

	n, err := uc.repo.DeactivateEnded(ctx, today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.InfoContext(ctx, "memberships expired", "count", n, "before", today.Format("2006-01-02"))
	}
	return n, nil
}
