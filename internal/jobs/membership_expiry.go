package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Expirer is satisfied by the membership expiry use case.
type Expirer interface {
	Execute(ctx context.Context) (int64, error)
}

// StartMembershipExpiry runs the expiry once at start and then every hour.
func StartMembershipExpiry(loc *time.Location, expirer Expirer) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(loc)

	_, err := scheduler.Every(1).Hour().Do(func() {
		RunMembershipExpiry(context.Background(), expirer)
	})
	if err != nil {
		return nil, err
	}

	scheduler.StartAsync()
	slog.Info("membership expiry job started")

	return scheduler, nil
}

func RunMembershipExpiry(ctx context.Context, expirer Expirer) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := expirer.Execute(ctx); err != nil {
		slog.ErrorContext(ctx, "membership expiry failed", "err", err)
	}
}
